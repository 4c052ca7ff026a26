package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-backend/internal/dto"
	"medicare-backend/internal/middleware"
	"medicare-backend/internal/service"
	"medicare-backend/pkg/errs"
)

type UserHandler struct {
	service service.UserService
}

func CreateUserHandler(g *gin.RouterGroup, service service.UserService) {
	h := UserHandler{service: service}
	g.GET("/users/profile", h.GetProfile)
	g.PUT("/users/profile", h.UpdateProfile)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	user, err := h.service.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errs.ErrInvalidRequest)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), identity.UserID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}
