package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// AttendanceHandler serves the daily mark and the recognition preview.
type AttendanceHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// readSnapshot pulls the webcam frame out of the multipart "image" part.
func readSnapshot(c *gin.Context) ([]byte, bool) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		bindError(c, err)
		return nil, false
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		bindError(c, err)
		return nil, false
	}
	return image, true
}

// Mark handles POST /api/v1/student/attendance.
func (h *AttendanceHandler) Mark(c *gin.Context) {
	image, ok := readSnapshot(c)
	if !ok {
		return
	}

	resp, err := h.svc.Attendance.Mark(c.Request.Context(), image)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Created(c, resp)
}

// Recognize handles POST /api/v1/recognize. Stateless preview: resolves the
// snapshot without writing an attendance record.
func (h *AttendanceHandler) Recognize(c *gin.Context) {
	image, ok := readSnapshot(c)
	if !ok {
		return
	}

	resp, err := h.svc.Attendance.Recognize(c.Request.Context(), image)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
