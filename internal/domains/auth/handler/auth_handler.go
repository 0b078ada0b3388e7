package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labsite-backend/internal/domains/auth"
	"labsite-backend/internal/shared/response"
)

// AuthHandler handles admin login.
type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.service.Login(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
