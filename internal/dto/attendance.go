package dto

// ── attendance DTOs ──

// MatchedStudent identifies the student a snapshot resolved to.
type MatchedStudent struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

// MarkAttendanceResponse confirms a daily mark.
type MarkAttendanceResponse struct {
	Student    MatchedStudent `json:"student"`
	Confidence float64        `json:"confidence"`
	Timestamp  string         `json:"timestamp"`
}

// RecognizeResponse is the result of the stateless recognition preview.
type RecognizeResponse struct {
	Message    string         `json:"message"`
	Student    MatchedStudent `json:"student"`
	Confidence float64        `json:"confidence"`
}
