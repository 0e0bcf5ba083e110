package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/internal/dto"
	"github.com/Sujithrababu/attendance-system/internal/model"
	"github.com/Sujithrababu/attendance-system/internal/repository"
)

// DashboardService assembles the student and admin home views.
type DashboardService interface {
	Student(ctx context.Context, user *dto.UserResponse) (*dto.StudentDashboardResponse, error)
	Admin(ctx context.Context) (*dto.AdminDashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService creates the DashboardService.
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Student(ctx context.Context, user *dto.UserResponse) (*dto.StudentDashboardResponse, error) {
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))

	todayStatus := "Not Marked"
	rec, err := s.repo.Attendance.GetByStudentAndDate(ctx, user.StudentID, today)
	if err == nil {
		todayStatus = rec.Status
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup today's attendance failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.ODRequest.CountByStatusForStudent(ctx, user.StudentID)
	if err != nil {
		s.logger.Error("count OD requests failed", zap.Error(err))
		return nil, err
	}

	recent, err := s.repo.ODRequest.RecentByStudent(ctx, user.StudentID, 3)
	if err != nil {
		s.logger.Error("list recent OD requests failed", zap.Error(err))
		return nil, err
	}

	recentActivities := make([]dto.RecentActivity, 0, len(recent))
	for _, req := range recent {
		recentActivities = append(recentActivities, dto.RecentActivity{
			ActivityName: req.ActivityName,
			EventDate:    req.EventDate.Format("2006-01-02"),
			Status:       req.Status,
		})
	}

	return &dto.StudentDashboardResponse{
		TodayAttendance:  todayStatus,
		ODStats:          toStatusCounts(counts),
		RecentActivities: recentActivities,
		StudentInfo:      *user,
	}, nil
}

func (s *dashboardService) Admin(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	today, _ := time.Parse("2006-01-02", time.Now().Format("2006-01-02"))

	totalStudents, err := s.repo.User.CountStudents(ctx)
	if err != nil {
		s.logger.Error("count students failed", zap.Error(err))
		return nil, err
	}

	todayAttendance, err := s.repo.Attendance.CountByDate(ctx, today)
	if err != nil {
		s.logger.Error("count attendance failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.ODRequest.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("count OD requests failed", zap.Error(err))
		return nil, err
	}

	recent, err := s.repo.ODRequest.Recent(ctx, 5)
	if err != nil {
		s.logger.Error("list recent OD requests failed", zap.Error(err))
		return nil, err
	}

	breakdown := toStatusCounts(counts)

	return &dto.AdminDashboardResponse{
		Stats: dto.AdminStats{
			TotalStudents:     totalStudents,
			TodayAttendance:   todayAttendance,
			PendingODRequests: breakdown.Pending,
			ODBreakdown:       breakdown,
		},
		RecentRequests: toODResponses(recent, true),
	}, nil
}

func toStatusCounts(counts map[string]int64) dto.ODStatusCounts {
	return dto.ODStatusCounts{
		Pending:  counts[model.ODStatusPending],
		Approved: counts[model.ODStatusApproved],
		Rejected: counts[model.ODStatusRejected],
	}
}
