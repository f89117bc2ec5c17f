package requests

// CreateDoctor is the admin onboarding payload. It creates both the
// doctor profile and the login account in one call.
type CreateDoctor struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,alphanum,min=4,max=20"`
	Password        string `json:"password" validate:"password"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	FullName        string `json:"full_name" validate:"required,min=3,max=100"`
	Specialization  string `json:"specialization" validate:"required,min=3,max=60"`
	Qualifications  string `json:"qualifications,omitempty" validate:"omitempty,max=300"`
	ExperienceYears int    `json:"experience_years,omitempty" validate:"omitempty,min=0,max=80"`
}
