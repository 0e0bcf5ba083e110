package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves admin report downloads.
type ExportHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// Attendance handles GET /api/v1/admin/export/attendance?from=&to=.
// Defaults to the current month when the range is omitted.
func (h *ExportHandler) Attendance(c *gin.Context) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	var err error
	if s := c.Query("from"); s != "" {
		if from, err = time.Parse("2006-01-02", s); err != nil {
			response.BadRequest(c, 10001, "from must be YYYY-MM-DD")
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = time.Parse("2006-01-02", s); err != nil {
			response.BadRequest(c, 10001, "to must be YYYY-MM-DD")
			return
		}
	}

	buf, filename, err := h.svc.Export.AttendanceReport(c.Request.Context(), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
