package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/internal/model"
)

// ODRequestRepository is the od_requests data-access interface.
type ODRequestRepository interface {
	Create(ctx context.Context, req *model.ODRequest) error
	GetByID(ctx context.Context, id string) (*model.ODRequest, error)
	Update(ctx context.Context, req *model.ODRequest) error
	ListByStudent(ctx context.Context, studentID string) ([]model.ODRequest, error)
	List(ctx context.Context, status string) ([]model.ODRequest, error)
	RecentByStudent(ctx context.Context, studentID string, limit int) ([]model.ODRequest, error)
	Recent(ctx context.Context, limit int) ([]model.ODRequest, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByStatusForStudent(ctx context.Context, studentID string) (map[string]int64, error)
}

type odRequestRepo struct {
	db *gorm.DB
}

// NewODRequestRepo creates the GORM-backed ODRequestRepository.
func NewODRequestRepo(db *gorm.DB) ODRequestRepository {
	return &odRequestRepo{db: db}
}

func (r *odRequestRepo) Create(ctx context.Context, req *model.ODRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *odRequestRepo) GetByID(ctx context.Context, id string) (*model.ODRequest, error) {
	var req model.ODRequest
	err := r.db.WithContext(ctx).
		Where("od_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *odRequestRepo) Update(ctx context.Context, req *model.ODRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *odRequestRepo) ListByStudent(ctx context.Context, studentID string) ([]model.ODRequest, error) {
	var reqs []model.ODRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *odRequestRepo) List(ctx context.Context, status string) ([]model.ODRequest, error) {
	db := r.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var reqs []model.ODRequest
	if err := db.Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *odRequestRepo) RecentByStudent(ctx context.Context, studentID string, limit int) ([]model.ODRequest, error) {
	var reqs []model.ODRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *odRequestRepo) Recent(ctx context.Context, limit int) ([]model.ODRequest, error) {
	var reqs []model.ODRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

type statusCount struct {
	Status string
	Count  int64
}

func (r *odRequestRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countByStatus(ctx, "")
}

func (r *odRequestRepo) CountByStatusForStudent(ctx context.Context, studentID string) (map[string]int64, error) {
	return r.countByStatus(ctx, studentID)
}

func (r *odRequestRepo) countByStatus(ctx context.Context, studentID string) (map[string]int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.ODRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status")
	if studentID != "" {
		db = db.Where("student_id = ?", studentID)
	}

	var rows []statusCount
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
