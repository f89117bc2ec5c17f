package audit

import (
	"context"
	"sync"
	"time"

	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

var (
	auditServiceInstance *auditService
	onceAuditService     sync.Once
)

// auditService appends who-did-what entries without blocking the request; a
// failed write is logged and dropped, never surfaced to the caller.
type auditService struct {
	AuditRepository contracts.AuditRepository
	Log             *zap.Logger
}

func NewAuditService(auditRepository contracts.AuditRepository, logger *zap.Logger) contracts.AuditService {
	onceAuditService.Do(func() {
		auditServiceInstance = &auditService{
			AuditRepository: auditRepository,
			Log:             logger,
		}
	})
	return auditServiceInstance
}

func (s *auditService) Record(ctx context.Context, entry *models.AuditLog) {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		entry.RequestID = requestID
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.AuditRepository.CreateEntry(writeCtx, entry); err != nil {
			s.Log.Error("audit entry dropped",
				zap.String("action", entry.Action),
				zap.Error(err),
			)
		}
	}()
}
