package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medicare-backend/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
}

func CreateCatalogHandler(g *gin.RouterGroup, service service.CatalogService) {
	h := CatalogHandler{service: service}
	g.GET("/products", h.GetProducts)
	g.GET("/products/:id", h.GetProduct)
	g.GET("/categories", h.GetCategories)
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	products, err := h.service.GetProducts(c.Request.Context(), category, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
