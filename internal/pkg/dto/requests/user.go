package requests

type UpdateProfile struct {
	Username string `json:"username" validate:"omitempty,alphanum,min=4,max=20"`
	Phone    string `json:"phone" validate:"omitempty,min=8,max=20"`
}

type ChangePassword struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"password"`
}
