package contracts

import (
	"context"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error)
	ListAppointments(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Appointment, int, error)
	UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) error
	AvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error)
	Stats(ctx context.Context, session *models.Session) (*responses.AppointmentStats, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.Appointment, int, error)
	FindByDoctor(ctx context.Context, doctorID string, query *requests.QueryParams) ([]models.Appointment, int, error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Appointment, int, error)
	FindActiveSlot(ctx context.Context, doctorID, date, timeOfDay string) (*models.Appointment, error)
	FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status, notes string) error
	CountByStatus(ctx context.Context, doctorID string) (map[string]int, error)
}
