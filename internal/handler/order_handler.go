package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-backend/internal/dto"
	"medicare-backend/internal/middleware"
	"medicare-backend/internal/service"
	"medicare-backend/pkg/errs"
)

type OrderHandler struct {
	service service.OrderService
}

func CreateOrderHandler(g *gin.RouterGroup, service service.OrderService) {
	h := OrderHandler{service: service}
	g.GET("/orders", h.ListOrders)
	g.POST("/orders", h.CreateOrder)
	g.GET("/orders/:id", h.GetOrder)
	g.PATCH("/orders/:id/status", h.UpdateStatus)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	orders, err := h.service.ListOrders(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.ErrInvalidRequest)
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), identity.UserID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	order, err := h.service.GetOrder(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	// Tolerate an empty or malformed body; the status guard rejects it.
	var req dto.UpdateOrderStatusRequest
	_ = c.ShouldBindJSON(&req)

	order, err := h.service.UpdateStatus(c.Request.Context(), identity.UserID, c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
