package responses

type Appointment struct {
	ID         string `json:"id"`
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name,omitempty"`
	PatientID  string `json:"patient_id,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Symptoms   string `json:"symptoms,omitempty"`
	Notes      string `json:"notes,omitempty"`
	FeeCharged string `json:"fee_charged,omitempty"`
}

type AvailableSlots struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

type AppointmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}
