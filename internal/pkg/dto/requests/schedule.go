package requests

// UpdateSchedule carries a doctor's raw schedule submission. Validation is
// deliberately not expressed through struct tags here; the usecase checks the
// fields one by one so the first offending field decides the message.
type UpdateSchedule struct {
	AvailableDays []string `json:"available_days"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`

	// AvailableTime is the legacy combined "HH:MM-HH:MM" form, honoured
	// when the split fields are absent.
	AvailableTime string `json:"available_time,omitempty"`

	ConsultationFee string `json:"consultation_fee"`
}
