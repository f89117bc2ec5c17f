package requests

type BookAppointment struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,time_of_day"`
	Symptoms string `json:"symptoms" validate:"omitempty,max=1000"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled completed"`
	Notes  string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
