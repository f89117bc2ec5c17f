package contracts

import (
	"context"

	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
)

type TriageUsecase interface {
	AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*responses.TriageResult, error)
}
