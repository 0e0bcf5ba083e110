package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// ODHandler serves the OD request lifecycle.
type ODHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// Submit handles POST /api/v1/student/od-requests. The evidence document arrives as the
// multipart "od_file" part alongside the form fields.
func (h *ODHandler) Submit(c *gin.Context) {
	var form dto.SubmitODForm
	if err := c.ShouldBind(&form); err != nil {
		bindError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("od_file")
	if err != nil {
		bindError(c, err)
		return
	}
	defer file.Close()

	student, err := h.svc.Auth.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.svc.OD.Submit(c.Request.Context(), student, &form, header.Filename, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, resp)
}

// ListMine handles GET /api/v1/student/od-requests.
func (h *ODHandler) ListMine(c *gin.Context) {
	claims := currentClaims(c)
	reqs, err := h.svc.OD.ListByStudent(c.Request.Context(), claims.StudentID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"requests": reqs})
}

// List handles GET /api/v1/admin/od-requests?status=.
func (h *ODHandler) List(c *gin.Context) {
	reqs, err := h.svc.OD.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"requests": reqs})
}

// Get handles GET /api/v1/admin/od-requests/:id.
func (h *ODHandler) Get(c *gin.Context) {
	detail, err := h.svc.OD.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, detail)
}

// Approve handles POST /api/v1/admin/od-requests/:id/approve.
func (h *ODHandler) Approve(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindError(c, err)
		return
	}

	if err := h.svc.OD.Approve(c.Request.Context(), c.Param("id"), req.Notes); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "request approved"})
}

// Reject handles POST /api/v1/admin/od-requests/:id/reject.
func (h *ODHandler) Reject(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindError(c, err)
		return
	}

	if err := h.svc.OD.Reject(c.Request.Context(), c.Param("id"), req.Notes); err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "request rejected"})
}
