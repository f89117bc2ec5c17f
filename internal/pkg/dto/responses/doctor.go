package responses

type Doctor struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	Specialization  string   `json:"specialization"`
	Qualifications  string   `json:"qualifications,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	AvailableDays   []string `json:"available_days"`
	AvailableStart  string   `json:"available_start,omitempty"`
	AvailableEnd    string   `json:"available_end,omitempty"`
	ConsultationFee string   `json:"consultation_fee"`
	IsAvailable     bool     `json:"is_available"`
}
