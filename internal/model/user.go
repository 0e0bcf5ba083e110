package model

import "time"

// Role values stored on users.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is an identity record — table users.
// StudentID and the academic fields are only populated for student accounts.
type User struct {
	UserID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"         json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'student'"    json:"role"`
	StudentID    string    `gorm:"type:varchar(20)"                               json:"student_id,omitempty"`
	Name         string    `gorm:"type:varchar(100)"                              json:"name"`
	Department   string    `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	Year         string    `gorm:"type:varchar(10)"                               json:"year,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
