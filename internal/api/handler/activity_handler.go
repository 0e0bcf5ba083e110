package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// ActivityHandler serves the approved activity catalog.
type ActivityHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// List handles GET /api/v1/activities.
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.svc.Activity.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"activities": activities})
}
