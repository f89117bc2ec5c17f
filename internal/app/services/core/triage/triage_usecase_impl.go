package triage

import (
	"context"
	"strings"
	"sync"

	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	triageUsecaseInstance contracts.TriageUsecase
	onceTriageUsecase     sync.Once
)

type triageUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Rules            []models.TriageRule
	Log              *zap.Logger
}

func NewTriageUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.TriageUsecase {
	onceTriageUsecase.Do(func() {
		triageUsecaseInstance = &triageUsecase{
			DoctorRepository: doctorRepository,
			Rules:            defaultRules,
			Log:              logger,
		}
	})
	return triageUsecaseInstance
}

// AnalyzeSymptoms walks the rule table and suggests available doctors for
// the matched specialization.
func (uc *triageUsecase) AnalyzeSymptoms(ctx context.Context, request *requests.AnalyzeSymptoms) (*responses.TriageResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("triageUsecase.AnalyzeSymptoms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	matched := fallbackRule
	matchCount := 0
	for _, rule := range uc.Rules {
		if count := rule.MatchCount(request.Symptoms); count > 0 {
			matched = rule
			matchCount = count
			break
		}
	}

	isEmergency := false
	severity := 0
	lowered := strings.ToLower(request.Symptoms)
	for keyword, urgency := range emergencyKeywords {
		if strings.Contains(lowered, keyword) {
			isEmergency = true
			if urgency > severity {
				severity = urgency
			}
		}
	}
	if !isEmergency {
		severity = severityFor(matchCount)
	}

	result := &responses.TriageResult{
		Specialization: matched.Specialization,
		Urgency:        matched.Urgency,
		SeverityScore:  severity,
		IsEmergency:    isEmergency,
		Advice:         matched.Advice,
	}
	if isEmergency {
		result.Urgency = "high"
		result.Advice = emergencyAdvice
	}

	query := &requests.QueryParams{Specialization: matched.Specialization}
	query.Normalize()
	doctors, _, err := uc.DoctorRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Warn("triageUsecase.AnalyzeSymptoms doctor lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return result, nil
	}

	for i := range doctors {
		if !doctors[i].IsAvailable {
			continue
		}
		result.Doctors = append(result.Doctors, responses.Doctor{
			ID:              doctors[i].ID,
			FullName:        doctors[i].FullName,
			Specialization:  doctors[i].Specialization,
			AvailableDays:   doctors[i].AvailableDays,
			AvailableStart:  doctors[i].AvailableStart,
			AvailableEnd:    doctors[i].AvailableEnd,
			ConsultationFee: doctors[i].ConsultationFee,
			IsAvailable:     doctors[i].IsAvailable,
		})
	}
	return result, nil
}
