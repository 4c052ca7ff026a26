package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-backend/internal/dto"
	"medicare-backend/internal/service"
	"medicare-backend/pkg/errs"
)

type AuthHandler struct {
	service service.AuthService
}

func CreateAuthHandler(g *gin.RouterGroup, service service.AuthService) {
	h := AuthHandler{service: service}
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.ErrInvalidRequest)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.ErrInvalidRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
