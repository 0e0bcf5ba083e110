package model

import "time"

// OD request lifecycle states. pending is the only non-terminal state.
const (
	ODStatusPending  = "pending"
	ODStatusApproved = "approved"
	ODStatusRejected = "rejected"
)

// ODRequest is a student's on-duty leave request — table od_requests.
// VerifiedByOCR and DetectedCategory are computed once at submission from the
// extracted document text and never recomputed.
type ODRequest struct {
	ODRequestID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"od_request_id"`
	StudentID          string    `gorm:"type:varchar(20);not null;index"                json:"student_id"`
	StudentName        string    `gorm:"type:varchar(100);not null"                     json:"student_name"`
	ActivityType       string    `gorm:"type:varchar(50);not null"                      json:"activity_type"`
	ActivityName       string    `gorm:"type:varchar(200);not null"                     json:"activity_name"`
	EventDate          time.Time `gorm:"type:date;not null"                             json:"event_date"`
	EventVenue         string    `gorm:"type:varchar(200)"                              json:"event_venue,omitempty"`
	OrganizedBy        string    `gorm:"type:varchar(200)"                              json:"organized_by,omitempty"`
	CoordinatorName    string    `gorm:"type:varchar(100)"                              json:"coordinator_name,omitempty"`
	CoordinatorContact string    `gorm:"type:varchar(50)"                               json:"coordinator_contact,omitempty"`
	ODReason           string    `gorm:"type:text;not null"                             json:"od_reason"`
	FilePath           string    `gorm:"type:varchar(500);not null"                     json:"file_path"`
	OCRText            string    `gorm:"type:text"                                      json:"ocr_text,omitempty"`
	VerifiedByOCR      bool      `gorm:"not null;default:false"                         json:"verified_by_ocr"`
	DetectedCategory   string    `gorm:"type:varchar(20)"                               json:"detected_category,omitempty"`
	Status             string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AdminNotes         string    `gorm:"type:text"                                      json:"admin_notes,omitempty"`
	CreatedAt          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (ODRequest) TableName() string { return "od_requests" }
