package contracts

import (
	"context"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
)

type ScheduleUsecase interface {
	UpdateSchedule(ctx context.Context, session *models.Session, request *requests.UpdateSchedule) (*responses.Schedule, error)
	GetSchedule(ctx context.Context, session *models.Session) (*responses.Schedule, error)
}
