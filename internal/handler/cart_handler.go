package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-backend/internal/dto"
	"medicare-backend/internal/middleware"
	"medicare-backend/internal/service"
	"medicare-backend/pkg/errs"
)

type CartHandler struct {
	service service.CartService
}

func CreateCartHandler(g *gin.RouterGroup, service service.CartService) {
	h := CartHandler{service: service}
	g.GET("/cart", h.GetCart)
	g.POST("/cart", h.AddItem)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	cart, err := h.service.GetCart(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.ErrInvalidRequest)
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), identity.UserID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart": cart})
}
