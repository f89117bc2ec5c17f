package contracts

import (
	"context"

	"care4u-service/internal/app/models"
)

type AuditService interface {
	Record(ctx context.Context, entry *models.AuditLog)
}

type AuditRepository interface {
	CreateEntry(ctx context.Context, entry *models.AuditLog) error
}
