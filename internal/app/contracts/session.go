package contracts

import (
	"context"

	"care4u-service/internal/app/models"
)

type SessionService interface {
	Create(ctx context.Context, session *models.Session) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Refresh(ctx context.Context, session *models.Session) error
	Destroy(ctx context.Context, sessionID string) error
}
