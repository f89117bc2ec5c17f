package utils

import (
	"care4u-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(request *requests.RegisterUser) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Username = strings.TrimSpace(request.Username)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Specialization = strings.TrimSpace(request.Specialization)
}

func SanitizeLoginUserRequest(request *requests.LoginUser) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateDoctorRequest(request *requests.CreateDoctor) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Username = strings.TrimSpace(request.Username)
	request.Phone = strings.TrimSpace(request.Phone)
	request.FullName = strings.TrimSpace(request.FullName)
	request.Specialization = strings.TrimSpace(request.Specialization)
	request.Qualifications = strings.TrimSpace(request.Qualifications)
}

func SanitizeUpdateScheduleRequest(request *requests.UpdateSchedule) {
	request.StartTime = strings.TrimSpace(request.StartTime)
	request.EndTime = strings.TrimSpace(request.EndTime)
	request.AvailableTime = strings.TrimSpace(request.AvailableTime)
	request.ConsultationFee = strings.TrimSpace(request.ConsultationFee)

	// Days may arrive as one comma-joined string or as separate entries.
	days := make([]string, 0, len(request.AvailableDays))
	for _, entry := range request.AvailableDays {
		for _, day := range strings.Split(entry, ",") {
			trimmed := strings.TrimSpace(day)
			if trimmed != "" {
				days = append(days, trimmed)
			}
		}
	}
	request.AvailableDays = days
}

func SanitizeBookAppointmentRequest(request *requests.BookAppointment) {
	request.Date = strings.TrimSpace(request.Date)
	request.Time = strings.TrimSpace(request.Time)
	request.Symptoms = strings.TrimSpace(request.Symptoms)
}

func SanitizeTriageRequest(request *requests.AnalyzeSymptoms) {
	request.Symptoms = strings.TrimSpace(request.Symptoms)
}
