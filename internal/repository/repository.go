package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User       UserRepository
	Attendance AttendanceRepository
	ODRequest  ODRequestRepository
	Activity   ActivityRepository

	db *gorm.DB
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Attendance: NewAttendanceRepo(db),
		ODRequest:  NewODRequestRepo(db),
		Activity:   NewActivityRepo(db),
		db:         db,
	}
}

// Transaction runs fn inside a database transaction, giving it a Repository
// bound to the transactional connection. Used by the OD-approval back-fill,
// which touches od_requests and attendance_records together.
func (r *Repository) Transaction(fn func(txRepo *Repository) error) error {
	if r.db == nil {
		// repositories assembled without a live DB (tests) run fn directly
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
