package service

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/Sujithrababu/attendance-system/config"
	"github.com/Sujithrababu/attendance-system/internal/facerec"
	"github.com/Sujithrababu/attendance-system/internal/ocr"
	"github.com/Sujithrababu/attendance-system/internal/repository"
	"github.com/Sujithrababu/attendance-system/pkg/jwt"
	"github.com/Sujithrababu/attendance-system/pkg/redis"
)

// TextExtractor is the document-to-text collaborator (see internal/ocr).
type TextExtractor interface {
	Extract(ctx context.Context, path string, kind ocr.Kind) string
}

// FileStore persists uploaded evidence (see internal/filestore).
type FileStore interface {
	Allowed(ext string) bool
	Save(studentID, originalName string, content io.Reader) (string, error)
}

// Service aggregates all business-logic entry points.
type Service struct {
	Auth       AuthService
	Attendance AttendanceService
	OD         ODService
	Activity   ActivityService
	Dashboard  DashboardService
	Export     ExportService
}

// NewService wires the service layer.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	matcher facerec.Matcher,
	extractor TextExtractor,
	store FileStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Attendance: NewAttendanceService(repo, matcher, logger),
		OD:         NewODService(repo, extractor, store, logger),
		Activity:   NewActivityService(repo, logger),
		Dashboard:  NewDashboardService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
