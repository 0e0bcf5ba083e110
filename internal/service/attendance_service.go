package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/facerec"
	"github.com/Sujithrababu/attendance-system/internal/model"
	"github.com/Sujithrababu/attendance-system/internal/repository"
)

// ── attendance errors ──

var (
	ErrAlreadyMarked = errors.New("attendance already marked for today")
	ErrNoFaceMatch   = errors.New("face recognition found no registered match")
)

// AttendanceService marks daily presence and exposes the recognition preview.
type AttendanceService interface {
	Mark(ctx context.Context, image []byte) (*dto.MarkAttendanceResponse, error)
	Recognize(ctx context.Context, image []byte) (*dto.RecognizeResponse, error)
}

type attendanceService struct {
	repo    *repository.Repository
	matcher facerec.Matcher
	logger  *zap.Logger
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(repo *repository.Repository, matcher facerec.Matcher, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, matcher: matcher, logger: logger}
}

// Mark resolves the snapshot to a registered student and records today's
// presence. A second mark on the same day is a conflict, never an overwrite.
func (s *attendanceService) Mark(ctx context.Context, image []byte) (*dto.MarkAttendanceResponse, error) {
	match, err := s.matcher.Match(ctx, image)
	if err != nil {
		if errors.Is(err, facerec.ErrNoRegisteredFaces) {
			return nil, ErrNoFaceMatch
		}
		s.logger.Error("face match failed", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	date, _ := time.Parse("2006-01-02", today)

	if _, err := s.repo.Attendance.GetByStudentAndDate(ctx, match.StudentID, date); err == nil {
		return nil, ErrAlreadyMarked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup attendance failed", zap.Error(err))
		return nil, err
	}

	rec := &model.AttendanceRecord{
		StudentID:   match.StudentID,
		StudentName: match.Name,
		Date:        date,
		Time:        now.Format("15:04:05"),
		Status:      model.AttendancePresent,
		Confidence:  match.Confidence,
	}
	if err := s.repo.Attendance.Create(ctx, rec); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race against a concurrent mark
			return nil, ErrAlreadyMarked
		}
		s.logger.Error("create attendance failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("attendance marked",
		zap.String("student_id", match.StudentID),
		zap.Float64("confidence", match.Confidence),
	)

	return &dto.MarkAttendanceResponse{
		Student: dto.MatchedStudent{
			StudentID: match.StudentID,
			Name:      match.Name,
		},
		Confidence: match.Confidence,
		Timestamp:  fmt.Sprintf("%s %s", today, rec.Time),
	}, nil
}

// Recognize runs the matcher without persisting anything.
func (s *attendanceService) Recognize(ctx context.Context, image []byte) (*dto.RecognizeResponse, error) {
	match, err := s.matcher.Match(ctx, image)
	if err != nil {
		if errors.Is(err, facerec.ErrNoRegisteredFaces) {
			return nil, ErrNoFaceMatch
		}
		s.logger.Error("face match failed", zap.Error(err))
		return nil, err
	}

	return &dto.RecognizeResponse{
		Message: fmt.Sprintf("Face recognized successfully! Welcome %s", match.Name),
		Student: dto.MatchedStudent{
			StudentID: match.StudentID,
			Name:      match.Name,
		},
		Confidence: match.Confidence,
	}, nil
}
