package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/filestore"
	"github.com/Sujithrababu/attendance-system/internal/model"
	"github.com/Sujithrababu/attendance-system/internal/ocr"
	"github.com/Sujithrababu/attendance-system/internal/repository"
	"github.com/Sujithrababu/attendance-system/internal/verify"
)

// ── OD errors ──

var (
	ErrODRequestNotFound = errors.New("OD request not found")
	ErrUnsupportedUpload = errors.New("invalid file format, upload PDF or image files")
	ErrAlreadyReviewed   = errors.New("request has already been reviewed")
	ErrInvalidEventDate  = errors.New("event_date must be YYYY-MM-DD")
	ErrBadStatusFilter   = errors.New("status filter must be pending, approved, rejected or all")
)

// ODService owns the request lifecycle: submit → pending → approved/rejected.
type ODService interface {
	Submit(ctx context.Context, student *dto.UserResponse, form *dto.SubmitODForm, filename string, content io.Reader) (*dto.SubmitODResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]dto.ODRequestResponse, error)
	List(ctx context.Context, status string) ([]dto.ODRequestResponse, error)
	Get(ctx context.Context, id string) (*dto.ODRequestDetailResponse, error)
	Approve(ctx context.Context, id, notes string) error
	Reject(ctx context.Context, id, notes string) error
}

type odService struct {
	repo      *repository.Repository
	extractor TextExtractor
	store     FileStore
	logger    *zap.Logger
}

// NewODService creates the ODService.
func NewODService(repo *repository.Repository, extractor TextExtractor, store FileStore, logger *zap.Logger) ODService {
	return &odService{
		repo:      repo,
		extractor: extractor,
		store:     store,
		logger:    logger,
	}
}

// Submit validates the form, persists the evidence file, extracts its text
// and runs the content check. The verification outcome is stored with the
// request but never blocks creation: even an unverified request is queued
// for human review.
func (s *odService) Submit(ctx context.Context, student *dto.UserResponse, form *dto.SubmitODForm, filename string, content io.Reader) (*dto.SubmitODResponse, error) {
	eventDate, err := time.Parse("2006-01-02", form.EventDate)
	if err != nil {
		return nil, ErrInvalidEventDate
	}

	ext := filestore.Ext(filename)
	if !s.store.Allowed(ext) {
		return nil, ErrUnsupportedUpload
	}

	path, err := s.store.Save(student.StudentID, filename, content)
	if err != nil {
		if errors.Is(err, filestore.ErrUnsupportedType) {
			return nil, ErrUnsupportedUpload
		}
		s.logger.Error("store upload failed", zap.Error(err))
		return nil, err
	}

	text := s.extractor.Extract(ctx, path, ocr.KindForExtension(ext))
	result := verify.Check(text)

	req := &model.ODRequest{
		StudentID:          student.StudentID,
		StudentName:        student.Name,
		ActivityType:       form.ActivityType,
		ActivityName:       form.ActivityName,
		EventDate:          eventDate,
		EventVenue:         form.EventVenue,
		OrganizedBy:        form.OrganizedBy,
		CoordinatorName:    form.CoordinatorName,
		CoordinatorContact: form.CoordinatorContact,
		ODReason:           form.ODReason,
		FilePath:           path,
		OCRText:            text,
		VerifiedByOCR:      result.Valid,
		DetectedCategory:   result.Category,
		Status:             model.ODStatusPending,
	}
	if err := s.repo.ODRequest.Create(ctx, req); err != nil {
		s.logger.Error("create OD request failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("OD request submitted",
		zap.String("request_id", req.ODRequestID),
		zap.String("student_id", student.StudentID),
		zap.Bool("verified", result.Valid),
	)

	return &dto.SubmitODResponse{
		RequestID: req.ODRequestID,
		Verification: dto.VerificationResult{
			IsValid:          result.Valid,
			Message:          result.Message,
			DetectedActivity: result.Category,
		},
	}, nil
}

func (s *odService) ListByStudent(ctx context.Context, studentID string) ([]dto.ODRequestResponse, error) {
	reqs, err := s.repo.ODRequest.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("list OD requests failed", zap.Error(err))
		return nil, err
	}
	return toODResponses(reqs, false), nil
}

func (s *odService) List(ctx context.Context, status string) ([]dto.ODRequestResponse, error) {
	switch status {
	case "", "all":
		status = ""
	case model.ODStatusPending, model.ODStatusApproved, model.ODStatusRejected:
	default:
		return nil, ErrBadStatusFilter
	}

	reqs, err := s.repo.ODRequest.List(ctx, status)
	if err != nil {
		s.logger.Error("list OD requests failed", zap.Error(err))
		return nil, err
	}
	return toODResponses(reqs, true), nil
}

func (s *odService) Get(ctx context.Context, id string) (*dto.ODRequestDetailResponse, error) {
	req, err := s.repo.ODRequest.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrODRequestNotFound
		}
		s.logger.Error("get OD request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.ODRequestDetailResponse{
		ODRequestResponse:  *toODResponse(req, true),
		EventVenue:         req.EventVenue,
		OrganizedBy:        req.OrganizedBy,
		CoordinatorName:    req.CoordinatorName,
		CoordinatorContact: req.CoordinatorContact,
		ODReason:           req.ODReason,
		OCRText:            req.OCRText,
		DetectedCategory:   req.DetectedCategory,
	}, nil
}

// Approve moves a pending request to approved and back-fills an on_duty
// attendance record for the event date. The back-fill upserts on the
// (student, date) key: a reviewer-confirmed OD supersedes an existing
// present mark. Re-approving an approved request is idempotent.
func (s *odService) Approve(ctx context.Context, id, notes string) error {
	return s.repo.Transaction(func(tx *repository.Repository) error {
		req, err := tx.ODRequest.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrODRequestNotFound
			}
			return err
		}
		if req.Status == model.ODStatusRejected {
			return ErrAlreadyReviewed
		}

		req.Status = model.ODStatusApproved
		req.AdminNotes = notes
		if err := tx.ODRequest.Update(ctx, req); err != nil {
			s.logger.Error("update OD request failed", zap.String("id", id), zap.Error(err))
			return err
		}

		rec := &model.AttendanceRecord{
			StudentID:   req.StudentID,
			StudentName: req.StudentName,
			Date:        req.EventDate,
			Time:        "00:00:00",
			Status:      model.AttendanceOnDuty,
			Confidence:  1.0,
		}
		if err := tx.Attendance.Upsert(ctx, rec); err != nil {
			s.logger.Error("attendance back-fill failed", zap.String("id", id), zap.Error(err))
			return err
		}

		s.logger.Info("OD request approved",
			zap.String("request_id", id),
			zap.String("student_id", req.StudentID),
			zap.String("event_date", req.EventDate.Format("2006-01-02")),
		)
		return nil
	})
}

// Reject moves a pending request to rejected. Rejecting twice only refreshes
// the reviewer notes.
func (s *odService) Reject(ctx context.Context, id, notes string) error {
	req, err := s.repo.ODRequest.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrODRequestNotFound
		}
		return err
	}
	if req.Status == model.ODStatusApproved {
		return ErrAlreadyReviewed
	}

	req.Status = model.ODStatusRejected
	req.AdminNotes = notes
	if err := s.repo.ODRequest.Update(ctx, req); err != nil {
		s.logger.Error("update OD request failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("OD request rejected", zap.String("request_id", id))
	return nil
}

func toODResponse(req *model.ODRequest, includeStudent bool) *dto.ODRequestResponse {
	resp := &dto.ODRequestResponse{
		ID:            req.ODRequestID,
		ActivityType:  req.ActivityType,
		ActivityName:  req.ActivityName,
		EventDate:     req.EventDate.Format("2006-01-02"),
		Status:        req.Status,
		AdminNotes:    req.AdminNotes,
		VerifiedByOCR: req.VerifiedByOCR,
		CreatedAt:     req.CreatedAt,
	}
	if includeStudent {
		resp.StudentID = req.StudentID
		resp.StudentName = req.StudentName
	}
	return resp
}

func toODResponses(reqs []model.ODRequest, includeStudent bool) []dto.ODRequestResponse {
	result := make([]dto.ODRequestResponse, 0, len(reqs))
	for i := range reqs {
		result = append(result, *toODResponse(&reqs[i], includeStudent))
	}
	return result
}
