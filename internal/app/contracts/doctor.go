package contracts

import (
	"context"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	ListDoctors(ctx context.Context, query *requests.QueryParams) ([]responses.Doctor, int, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	ListSpecializations(ctx context.Context) ([]string, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.DoctorProfile) (doctorID string, err error)
	FindByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.DoctorProfile, int, error)
	ListSpecializations(ctx context.Context) ([]string, error)
	UpdateSchedule(ctx context.Context, doctorID string, schedule models.Schedule) error
	SetAvailability(ctx context.Context, doctorID string, available bool) error
}
