package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
	"care4u-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const (
	dateLayout       = "2006-01-02"
	slotLengthInMins = 60
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	NotificationPublisher contracts.NotificationPublisher
	AuditService          contracts.AuditService
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	notificationPublisher contracts.NotificationPublisher,
	auditService contracts.AuditService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			NotificationPublisher: notificationPublisher,
			AuditService:          auditService,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsAvailable {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not bookable", request.DoctorID))
	}

	date, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	weekday, err := models.ParseWeekday(date.Weekday().String())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if !doctor.WorksOn(weekday) {
		return nil, exceptions.ErrDayNotAvailable(fmt.Errorf("doctor does not work on %s", weekday))
	}

	timeOfDay, err := models.ParseTimeOfDay(request.Time)
	if err != nil {
		return nil, exceptions.ErrScheduleInvalidTimeFormat(err)
	}
	if !doctor.CoversTime(timeOfDay) {
		return nil, exceptions.ErrTimeOutsideSchedule(fmt.Errorf("%s outside %s-%s", timeOfDay, doctor.AvailableStart, doctor.AvailableEnd))
	}

	occupied, err := uc.AppointmentRepository.FindActiveSlot(ctx, request.DoctorID, request.Date, timeOfDay.String())
	if err != nil {
		return nil, err
	}
	if occupied != nil {
		return nil, exceptions.ErrSlotAlreadyBooked(fmt.Errorf("slot %s %s taken", request.Date, timeOfDay))
	}

	appointment := &models.Appointment{
		PatientID:  session.UserID,
		DoctorID:   request.DoctorID,
		Date:       request.Date,
		Time:       timeOfDay.String(),
		Status:     constvars.AppointmentStatusPending,
		Symptoms:   request.Symptoms,
		FeeCharged: doctor.ConsultationFee,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	if err := uc.NotificationPublisher.Publish(ctx, &contracts.NotificationMessage{
		UserID:  doctor.UserID,
		Event:   "appointment.booked",
		Subject: "New appointment request",
		Body:    fmt.Sprintf("%s requested %s at %s", session.Username, request.Date, timeOfDay),
	}); err != nil {
		uc.Log.Warn("appointmentUsecase.BookAppointment notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	return uc.buildAppointmentResponse(appointment, doctor.FullName), nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var appointments []models.Appointment
	var total int
	var err error
	switch session.Role {
	case constvars.RoleDoctor:
		appointments, total, err = uc.AppointmentRepository.FindByDoctor(ctx, session.DoctorID, query)
	case constvars.RoleAdmin:
		appointments, total, err = uc.AppointmentRepository.FindAll(ctx, query)
	default:
		appointments, total, err = uc.AppointmentRepository.FindByPatient(ctx, session.UserID, query)
	}
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *uc.buildAppointmentResponse(&appointments[i], ""))
	}
	return result, total, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
		zap.String("status", request.Status),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}

	if session.Role == constvars.RoleDoctor && appointment.DoctorID != session.DoctorID {
		return nil, exceptions.ErrAppointmentNotOwned(fmt.Errorf("appointment belongs to another doctor"))
	}
	if session.Role == constvars.RolePatient {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("patients cancel through the cancel endpoint"))
	}

	if !appointment.CanTransitionTo(request.Status) {
		return nil, exceptions.ErrInvalidAppointmentStatus(fmt.Errorf("cannot move %s to %s", appointment.Status, request.Status))
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status, request.Notes); err != nil {
		return nil, err
	}
	appointment.Status = request.Status
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}

	uc.AuditService.Record(ctx, &models.AuditLog{
		UserID:     session.UserID,
		Action:     constvars.AuditActionUpdateAppointment,
		Resource:   constvars.ResourceAppointments,
		ResourceID: appointmentID,
		Detail:     fmt.Sprintf("status set to %s", request.Status),
	})

	if err := uc.NotificationPublisher.Publish(ctx, &contracts.NotificationMessage{
		UserID:  appointment.PatientID,
		Event:   "appointment." + request.Status,
		Subject: fmt.Sprintf("Appointment %s", request.Status),
		Body:    fmt.Sprintf("Your appointment on %s at %s is now %s", appointment.Date, appointment.Time, request.Status),
	}); err != nil {
		uc.Log.Warn("appointmentUsecase.UpdateStatus notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return uc.buildAppointmentResponse(appointment, ""), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s not found", appointmentID))
	}
	if appointment.PatientID != session.UserID {
		return exceptions.ErrAppointmentNotOwned(fmt.Errorf("appointment belongs to another patient"))
	}
	if !appointment.IsActive() {
		return exceptions.ErrInvalidAppointmentStatus(fmt.Errorf("appointment already %s", appointment.Status))
	}

	return uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, constvars.AppointmentStatusCancelled, "")
}

// AvailableSlots enumerates hour-aligned openings within the doctor's
// working window on the given date, skipping occupied slots.
func (uc *appointmentUsecase) AvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.AvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsAvailable {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not bookable", doctorID))
	}

	parsedDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	weekday, err := models.ParseWeekday(parsedDate.Weekday().String())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	response := &responses.AvailableSlots{
		DoctorID: doctorID,
		Date:     date,
		Slots:    []string{},
	}
	if !doctor.WorksOn(weekday) {
		return response, nil
	}

	start, err := models.ParseTimeOfDay(doctor.AvailableStart)
	if err != nil {
		return response, nil
	}
	end, err := models.ParseTimeOfDay(doctor.AvailableEnd)
	if err != nil {
		return response, nil
	}

	booked, err := uc.AppointmentRepository.FindActiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	occupied := make(map[string]bool, len(booked))
	for _, appointment := range booked {
		occupied[appointment.Time] = true
	}

	for minutes := start.Minutes(); minutes+slotLengthInMins <= end.Minutes(); minutes += slotLengthInMins {
		slot := models.TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
		if !occupied[slot.String()] {
			response.Slots = append(response.Slots, slot.String())
		}
	}
	return response, nil
}

func (uc *appointmentUsecase) Stats(ctx context.Context, session *models.Session) (*responses.AppointmentStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Stats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
	)

	if session.DoctorID == "" {
		return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("session has no doctor profile"))
	}

	counts, err := uc.AppointmentRepository.CountByStatus(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}

	stats := &responses.AppointmentStats{
		Pending:   counts[constvars.AppointmentStatusPending],
		Confirmed: counts[constvars.AppointmentStatusConfirmed],
		Cancelled: counts[constvars.AppointmentStatusCancelled],
		Completed: counts[constvars.AppointmentStatusCompleted],
	}
	stats.Total = stats.Pending + stats.Confirmed + stats.Cancelled + stats.Completed
	return stats, nil
}

func (uc *appointmentUsecase) buildAppointmentResponse(appointment *models.Appointment, doctorName string) *responses.Appointment {
	return &responses.Appointment{
		ID:         appointment.ID,
		DoctorID:   appointment.DoctorID,
		DoctorName: doctorName,
		PatientID:  appointment.PatientID,
		Date:       appointment.Date,
		Time:       appointment.Time,
		Status:     appointment.Status,
		Symptoms:   appointment.Symptoms,
		Notes:      appointment.Notes,
		FeeCharged: appointment.FeeCharged,
	}
}
