package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// DashboardHandler serves the student and admin home views.
type DashboardHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// Student handles GET /api/v1/student/dashboard.
func (h *DashboardHandler) Student(c *gin.Context) {
	user, err := h.svc.Auth.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.svc.Dashboard.Student(c.Request.Context(), user)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Admin handles GET /api/v1/admin/dashboard.
func (h *DashboardHandler) Admin(c *gin.Context) {
	resp, err := h.svc.Dashboard.Admin(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
