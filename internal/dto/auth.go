package dto

// ── auth DTOs ──

// RegisterRequest registers a new account. Student metadata is required for
// the student role only.
type RegisterRequest struct {
	Username   string `json:"username"   binding:"required,min=3,max=50"`
	Password   string `json:"password"   binding:"required,min=6,max=72"`
	Role       string `json:"role"       binding:"required,oneof=student admin"`
	StudentID  string `json:"student_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	StudentID  string `json:"student_id,omitempty"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Year       string `json:"year,omitempty"`
}

// TokenResponse is the login result.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}
