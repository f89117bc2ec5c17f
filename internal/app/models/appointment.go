package models

import "care4u-service/internal/pkg/constvars"

type Appointment struct {
	ID         string `bson:"_id,omitempty"`
	PatientID  string `bson:"patientId"`
	DoctorID   string `bson:"doctorId"`
	Date       string `bson:"date"`
	Time       string `bson:"time"`
	Status     string `bson:"status"`
	Symptoms   string `bson:"symptoms,omitempty"`
	Notes      string `bson:"notes,omitempty"`
	FeeCharged string `bson:"feeCharged,omitempty"`
	TimeModel  `bson:",inline"`
}

// CanTransitionTo enforces the appointment lifecycle: pending may be
// confirmed or cancelled, confirmed may be completed or cancelled, and the
// terminal states accept nothing.
func (a *Appointment) CanTransitionTo(status string) bool {
	switch a.Status {
	case constvars.AppointmentStatusPending:
		return status == constvars.AppointmentStatusConfirmed || status == constvars.AppointmentStatusCancelled
	case constvars.AppointmentStatusConfirmed:
		return status == constvars.AppointmentStatusCompleted || status == constvars.AppointmentStatusCancelled
	default:
		return false
	}
}

func (a *Appointment) IsActive() bool {
	return a.Status == constvars.AppointmentStatusPending || a.Status == constvars.AppointmentStatusConfirmed
}
