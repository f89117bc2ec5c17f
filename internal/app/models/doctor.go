package models

import (
	"github.com/shopspring/decimal"
)

// DoctorProfile is the directory entry patients browse when booking. The
// schedule fields are the only part a doctor may edit after onboarding.
// The fee is stored as decimal text to survive the BSON round trip exactly.
type DoctorProfile struct {
	ID              string   `bson:"_id,omitempty"`
	UserID          string   `bson:"userId"`
	FullName        string   `bson:"fullName"`
	Specialization  string   `bson:"specialization"`
	Qualifications  string   `bson:"qualifications,omitempty"`
	ExperienceYears int      `bson:"experienceYears,omitempty"`
	AvailableDays   []string `bson:"availableDays,omitempty"`
	AvailableStart  string   `bson:"availableStart,omitempty"`
	AvailableEnd    string   `bson:"availableEnd,omitempty"`
	ConsultationFee string   `bson:"consultationFee"`
	IsAvailable     bool     `bson:"isAvailable"`
	TimeModel       `bson:",inline"`
}

// FeeDecimal parses the stored fee, returning zero when unset.
func (p *DoctorProfile) FeeDecimal() decimal.Decimal {
	fee, err := decimal.NewFromString(p.ConsultationFee)
	if err != nil {
		return decimal.Zero
	}
	return fee
}

// Schedule is the validated result of a schedule update, ready to persist.
type Schedule struct {
	Days  []Weekday
	Start TimeOfDay
	End   TimeOfDay
	Fee   decimal.Decimal
}

func (s Schedule) DayNames() []string {
	return WeekdayNames(s.Days)
}

// WorksOn reports whether day is one of the schedule's available days.
func (p *DoctorProfile) WorksOn(day Weekday) bool {
	name := day.String()
	for _, available := range p.AvailableDays {
		if available == name {
			return true
		}
	}
	return false
}

// CoversTime reports whether t falls inside the working window, start
// inclusive and end exclusive.
func (p *DoctorProfile) CoversTime(t TimeOfDay) bool {
	start, err := ParseTimeOfDay(p.AvailableStart)
	if err != nil {
		return false
	}
	end, err := ParseTimeOfDay(p.AvailableEnd)
	if err != nil {
		return false
	}
	return !t.Before(start) && t.Before(end)
}
