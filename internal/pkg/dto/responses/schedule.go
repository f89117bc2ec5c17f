package responses

type Schedule struct {
	AvailableDays   []string `json:"available_days"`
	AvailableTime   string   `json:"available_time"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	ConsultationFee string   `json:"consultation_fee"`
}
