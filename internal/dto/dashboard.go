package dto

// ── dashboard DTOs ──

// ODStatusCounts breaks OD requests down by lifecycle status.
type ODStatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// RecentActivity is a compact OD request line for dashboards.
type RecentActivity struct {
	ActivityName string `json:"activity_name"`
	EventDate    string `json:"event_date"`
	Status       string `json:"status"`
}

// StudentDashboardResponse is the student home view.
type StudentDashboardResponse struct {
	TodayAttendance  string           `json:"today_attendance"`
	ODStats          ODStatusCounts   `json:"od_stats"`
	RecentActivities []RecentActivity `json:"recent_activities"`
	StudentInfo      UserResponse     `json:"student_info"`
}

// AdminStats are the headline numbers of the admin view.
type AdminStats struct {
	TotalStudents     int64          `json:"total_students"`
	TodayAttendance   int64          `json:"today_attendance"`
	PendingODRequests int64          `json:"pending_od_requests"`
	ODBreakdown       ODStatusCounts `json:"od_breakdown"`
}

// AdminDashboardResponse is the admin home view.
type AdminDashboardResponse struct {
	Stats          AdminStats          `json:"stats"`
	RecentRequests []ODRequestResponse `json:"recent_requests"`
}
