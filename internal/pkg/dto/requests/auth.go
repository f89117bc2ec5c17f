package requests

type RegisterUser struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,alphanum,min=4,max=20"`
	Password string `json:"password" validate:"password"`
	Phone    string `json:"phone" validate:"omitempty,min=8,max=20"`
	Role     string `json:"role" validate:"required,role"`
	AdminKey string `json:"admin_key,omitempty"`

	// Doctor-only onboarding fields, ignored for other roles.
	FullName        string `json:"full_name,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
	Qualifications  string `json:"qualifications,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty" validate:"omitempty,min=0,max=80"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
