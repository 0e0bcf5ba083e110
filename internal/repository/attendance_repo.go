package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sujithrababu/attendance-system/internal/model"
)

// AttendanceRepository is the attendance_records data-access interface.
// Create enforces the (student_id, date) uniqueness strictly; Upsert overwrites
// an existing same-day record and is reserved for the OD-approval back-fill.
type AttendanceRepository interface {
	Create(ctx context.Context, rec *model.AttendanceRecord) error
	Upsert(ctx context.Context, rec *model.AttendanceRecord) error
	GetByStudentAndDate(ctx context.Context, studentID string, date time.Time) (*model.AttendanceRecord, error)
	CountByDate(ctx context.Context, date time.Time) (int64, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.AttendanceRecord, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *attendanceRepo) Upsert(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"student_name", "time", "status", "confidence"}),
		}).
		Create(rec).Error
}

func (r *attendanceRepo) GetByStudentAndDate(ctx context.Context, studentID string, date time.Time) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND date = ?", studentID, date.Format("2006-01-02")).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepo) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.AttendanceRecord{}).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&total).Error
	return total, err
}

func (r *attendanceRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.AttendanceRecord, error) {
	var recs []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date, student_id").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
