package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sujithrababu/attendance-system/internal/model"
)

// UserRepository is the users data-access interface.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*model.User, error)
	ListStudents(ctx context.Context) ([]model.User, error)
	CountStudents(ctx context.Context) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the GORM-backed UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListStudents(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role = ?", model.RoleStudent).
		Order("created_at").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) CountStudents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("role = ?", model.RoleStudent).
		Count(&total).Error
	return total, err
}
