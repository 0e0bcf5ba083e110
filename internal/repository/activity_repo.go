package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/internal/model"
)

// ActivityRepository is the read-only activities catalog interface.
type ActivityRepository interface {
	ListApproved(ctx context.Context) ([]model.Activity, error)
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo creates the GORM-backed ActivityRepository.
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) ListApproved(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("name").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
