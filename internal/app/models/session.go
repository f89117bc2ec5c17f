package models

import "time"

// Session is the server-side record a bearer token points at. It carries a
// snapshot of the signed-in user so handlers rarely need a user lookup; the
// doctor snapshot is refreshed in place whenever the schedule changes.
type Session struct {
	SessionID string          `json:"session_id"`
	UserID    string          `json:"user_id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Role      string          `json:"role"`
	DoctorID  string          `json:"doctor_id,omitempty"`
	Doctor    *DoctorSnapshot `json:"doctor,omitempty"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// DoctorSnapshot mirrors the schedule fields of the doctor's profile.
type DoctorSnapshot struct {
	FullName        string   `json:"full_name"`
	Specialization  string   `json:"specialization"`
	AvailableDays   []string `json:"available_days"`
	AvailableStart  string   `json:"available_start"`
	AvailableEnd    string   `json:"available_end"`
	ConsultationFee string   `json:"consultation_fee"`
}

// ApplySchedule refreshes the cached doctor snapshot after a schedule write.
func (s *Session) ApplySchedule(schedule Schedule) {
	if s.Doctor == nil {
		s.Doctor = &DoctorSnapshot{}
	}
	s.Doctor.AvailableDays = schedule.DayNames()
	s.Doctor.AvailableStart = schedule.Start.String()
	s.Doctor.AvailableEnd = schedule.End.String()
	s.Doctor.ConsultationFee = schedule.Fee.String()
}
