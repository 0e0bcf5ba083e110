package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// AuthHandler serves registration, login, logout and the current-user view.
type AuthHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.svc.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, user)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tokens, err := h.svc.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, tokens)
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Auth.Logout(c.Request.Context(), currentClaims(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "logged out"})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Auth.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, user)
}
