package responses

type RegisterUser struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	DoctorID string `json:"doctor_id,omitempty"`
}

type LoginUser struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expires_at"`
}
