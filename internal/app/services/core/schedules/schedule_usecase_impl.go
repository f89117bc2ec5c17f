package schedules

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
	"care4u-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

type scheduleUsecase struct {
	DoctorRepository      contracts.DoctorRepository
	SessionService        contracts.SessionService
	NotificationPublisher contracts.NotificationPublisher
	AuditService          contracts.AuditService
	MaxConsultationFee    decimal.Decimal
	Log                   *zap.Logger
}

func NewScheduleUsecase(
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	notificationPublisher contracts.NotificationPublisher,
	auditService contracts.AuditService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		maxFee, err := decimal.NewFromString(internalConfig.Schedule.MaxConsultationFee)
		if err != nil {
			maxFee = decimal.NewFromInt(1000000)
		}
		scheduleUsecaseInstance = &scheduleUsecase{
			DoctorRepository:      doctorRepository,
			SessionService:        sessionService,
			NotificationPublisher: notificationPublisher,
			AuditService:          auditService,
			MaxConsultationFee:    maxFee,
			Log:                   logger,
		}
	})
	return scheduleUsecaseInstance
}

// UpdateSchedule checks the submission field by field and stops at the first
// problem, so the doctor always sees one actionable message. Nothing is
// persisted unless every check passes; the write itself is a single update.
func (uc *scheduleUsecase) UpdateSchedule(ctx context.Context, session *models.Session, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
	)

	if session.DoctorID == "" {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("session has no doctor profile"))
	}

	schedule, err := uc.validate(request)
	if err != nil {
		uc.Log.Warn("scheduleUsecase.UpdateSchedule rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.DoctorRepository.UpdateSchedule(ctx, session.DoctorID, *schedule); err != nil {
		uc.Log.Error("scheduleUsecase.UpdateSchedule storage failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrScheduleStorage(err)
	}

	// The cached snapshot must reflect the new schedule before the
	// response goes out, otherwise a follow-up read sees stale hours.
	session.ApplySchedule(*schedule)
	if err := uc.SessionService.Refresh(ctx, session); err != nil {
		uc.Log.Error("scheduleUsecase.UpdateSchedule session refresh failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.AuditService.Record(ctx, &models.AuditLog{
		UserID:     session.UserID,
		Action:     constvars.AuditActionUpdateSchedule,
		Resource:   constvars.ResourceDoctors,
		ResourceID: session.DoctorID,
		Detail:     fmt.Sprintf("days=%s window=%s-%s fee=%s", models.FormatWeekdays(schedule.Days), schedule.Start, schedule.End, schedule.Fee),
	})

	if err := uc.NotificationPublisher.Publish(ctx, &contracts.NotificationMessage{
		UserID:  session.UserID,
		Event:   "schedule.updated",
		Subject: "Your availability was updated",
		Body:    fmt.Sprintf("New working window %s-%s on %s", schedule.Start, schedule.End, strings.Join(schedule.DayNames(), ", ")),
	}); err != nil {
		uc.Log.Warn("scheduleUsecase.UpdateSchedule notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("scheduleUsecase.UpdateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
	)

	return buildScheduleResponse(schedule), nil
}

func (uc *scheduleUsecase) GetSchedule(ctx context.Context, session *models.Session) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.GetSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
	)

	if session.DoctorID == "" {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("session has no doctor profile"))
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", session.DoctorID))
	}

	return &responses.Schedule{
		AvailableDays:   doctor.AvailableDays,
		AvailableTime:   fmt.Sprintf("%s-%s", doctor.AvailableStart, doctor.AvailableEnd),
		StartTime:       doctor.AvailableStart,
		EndTime:         doctor.AvailableEnd,
		ConsultationFee: doctor.ConsultationFee,
	}, nil
}

// validate runs the checks in a fixed order: presence, day names, time
// format, time range, then fee. The first failure wins.
func (uc *scheduleUsecase) validate(request *requests.UpdateSchedule) (*models.Schedule, error) {
	startText, endText := request.StartTime, request.EndTime
	if startText == "" && endText == "" && request.AvailableTime != "" {
		parts := strings.SplitN(request.AvailableTime, "-", 2)
		if len(parts) == 2 {
			startText = strings.TrimSpace(parts[0])
			endText = strings.TrimSpace(parts[1])
		}
	}

	if len(request.AvailableDays) == 0 || startText == "" || endText == "" || request.ConsultationFee == "" {
		return nil, exceptions.ErrScheduleMissingField(fmt.Errorf("days=%d start=%q end=%q fee=%q",
			len(request.AvailableDays), startText, endText, request.ConsultationFee))
	}

	days, err := models.ParseWeekdays(request.AvailableDays)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidDay(err)
	}

	start, err := models.ParseTimeOfDay(startText)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidTimeFormat(err)
	}
	end, err := models.ParseTimeOfDay(endText)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidTimeFormat(err)
	}

	if !start.Before(end) {
		return nil, exceptions.ErrScheduleInvalidTimeRange(fmt.Errorf("start %s not before end %s", start, end))
	}

	fee, err := decimal.NewFromString(request.ConsultationFee)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidFee(err)
	}
	if fee.IsNegative() {
		return nil, exceptions.ErrScheduleInvalidFee(fmt.Errorf("fee %s is negative", fee))
	}
	if fee.GreaterThan(uc.MaxConsultationFee) {
		return nil, exceptions.ErrScheduleFeeTooLarge(fmt.Errorf("fee %s exceeds ceiling %s", fee, uc.MaxConsultationFee))
	}

	return &models.Schedule{
		Days:  days,
		Start: start,
		End:   end,
		Fee:   fee,
	}, nil
}

func buildScheduleResponse(schedule *models.Schedule) *responses.Schedule {
	return &responses.Schedule{
		AvailableDays:   schedule.DayNames(),
		AvailableTime:   fmt.Sprintf("%s-%s", schedule.Start, schedule.End),
		StartTime:       schedule.Start.String(),
		EndTime:         schedule.End.String(),
		ConsultationFee: schedule.Fee.String(),
	}
}
