package dto

import "time"

// ── OD request DTOs ──

// SubmitODForm is the multipart form accompanying the evidence upload.
// The file itself arrives as the "od_file" part.
type SubmitODForm struct {
	ActivityType       string `form:"activity_type"       binding:"required"`
	ActivityName       string `form:"activity_name"       binding:"required"`
	EventDate          string `form:"event_date"          binding:"required,datetime=2006-01-02"`
	EventVenue         string `form:"event_venue"`
	OrganizedBy        string `form:"organized_by"`
	CoordinatorName    string `form:"coordinator_name"`
	CoordinatorContact string `form:"coordinator_contact"`
	ODReason           string `form:"od_reason"           binding:"required"`
}

// VerificationResult reports the automated content check stored with a request.
type VerificationResult struct {
	IsValid          bool   `json:"is_valid"`
	Message          string `json:"message"`
	DetectedActivity string `json:"detected_activity,omitempty"`
}

// SubmitODResponse confirms a submission.
type SubmitODResponse struct {
	RequestID    string             `json:"request_id"`
	Verification VerificationResult `json:"verification"`
}

// ODRequestResponse is the list view of a request.
type ODRequestResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id,omitempty"`
	StudentName   string    `json:"student_name,omitempty"`
	ActivityType  string    `json:"activity_type"`
	ActivityName  string    `json:"activity_name"`
	EventDate     string    `json:"event_date"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"admin_notes,omitempty"`
	VerifiedByOCR bool      `json:"verified_by_ocr"`
	CreatedAt     time.Time `json:"created_at"`
}

// ODRequestDetailResponse is the full admin view of a request.
type ODRequestDetailResponse struct {
	ODRequestResponse
	EventVenue         string `json:"event_venue,omitempty"`
	OrganizedBy        string `json:"organized_by,omitempty"`
	CoordinatorName    string `json:"coordinator_name,omitempty"`
	CoordinatorContact string `json:"coordinator_contact,omitempty"`
	ODReason           string `json:"od_reason"`
	OCRText            string `json:"ocr_text,omitempty"`
	DetectedCategory   string `json:"detected_category,omitempty"`
}

// ReviewRequest carries the reviewer's notes for an approve/reject action.
type ReviewRequest struct {
	Notes string `json:"notes"`
}
