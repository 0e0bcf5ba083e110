package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/internal/service"
	"github.com/Sujithrababu/attendance-system/pkg/response"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Attendance *AttendanceHandler
	OD         *ODHandler
	Activity   *ActivityHandler
	Dashboard  *DashboardHandler
	Export     *ExportHandler
}

// NewHandler wires the handler layer.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:       &AuthHandler{svc: svc, logger: logger},
		Attendance: &AttendanceHandler{svc: svc, logger: logger},
		OD:         &ODHandler{svc: svc, logger: logger},
		Activity:   &ActivityHandler{svc: svc, logger: logger},
		Dashboard:  &DashboardHandler{svc: svc, logger: logger},
		Export:     &ExportHandler{svc: svc, logger: logger},
	}
}

// writeServiceError maps service sentinel errors onto the response envelope.
// Anything unrecognized is a 500.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.Conflict(c, 11002, err.Error())
	case errors.Is(err, service.ErrStudentIDRequired):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11003, err.Error())
	case errors.Is(err, service.ErrAlreadyMarked):
		response.Conflict(c, 12001, err.Error())
	case errors.Is(err, service.ErrNoFaceMatch):
		response.BadRequest(c, 12002, err.Error())
	case errors.Is(err, service.ErrODRequestNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrAlreadyReviewed):
		response.Conflict(c, 13002, err.Error())
	case errors.Is(err, service.ErrUnsupportedUpload):
		response.BadRequest(c, 13003, err.Error())
	case errors.Is(err, service.ErrInvalidEventDate),
		errors.Is(err, service.ErrBadStatusFilter):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, service.ErrExportBadRange):
		response.BadRequest(c, 14001, err.Error())
	case errors.Is(err, service.ErrExportNoRecords):
		response.NotFound(c, 14002, err.Error())
	default:
		response.InternalError(c)
	}
}

// bindError writes the uniform 400 for request binding failures.
func bindError(c *gin.Context, err error) {
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "invalid request", err.Error())
}
