package model

import "time"

// Attendance status values.
const (
	AttendancePresent = "present"
	AttendanceOnDuty  = "on_duty"
)

// AttendanceRecord is one mark per (student, date) — table attendance_records.
// The (student_id, date) pair is unique: a same-day re-mark is a conflict,
// and the OD-approval back-fill upserts on this key.
type AttendanceRecord struct {
	AttendanceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"attendance_id"`
	StudentID    string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_attendance_student_date" json:"student_id"`
	StudentName  string    `gorm:"type:varchar(100);not null"                              json:"student_name"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date" json:"date"`
	Time         string    `gorm:"type:varchar(8);not null"                                json:"time"`
	Status       string    `gorm:"type:varchar(20);not null"                               json:"status"`
	Confidence   float64   `gorm:"not null;default:0"                                      json:"confidence"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                      json:"created_at"`
}

// TableName sets the table name.
func (AttendanceRecord) TableName() string { return "attendance_records" }
