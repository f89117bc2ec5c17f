package responses

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	DoctorID string `json:"doctor_id,omitempty"`
}
