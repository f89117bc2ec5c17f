package doctors

import (
	"context"
	"fmt"
	"sync"

	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	UserRepository   contracts.UserRepository
	AuditService     contracts.AuditService
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	auditService contracts.AuditService,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			UserRepository:   userRepository,
			AuditService:     auditService,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

// CreateDoctor onboards a doctor in one call: the login account, the
// profile, and the link between them. The profile starts unavailable
// until the doctor publishes a working schedule.
func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s taken", request.Email))
	}

	existing, err = uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s taken", request.Username))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		Phone:    request.Phone,
		Role:     constvars.RoleDoctor,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	doctor := &models.DoctorProfile{
		UserID:          userID,
		FullName:        request.FullName,
		Specialization:  request.Specialization,
		Qualifications:  request.Qualifications,
		ExperienceYears: request.ExperienceYears,
		ConsultationFee: decimal.Zero.String(),
		IsAvailable:     false,
	}
	doctor.SetCreatedAtUpdatedAt()

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = doctorID

	user.DoctorID = doctorID
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.AuditService.Record(ctx, &models.AuditLog{
		UserID:     userID,
		Action:     constvars.AuditActionCreateDoctor,
		Resource:   constvars.ResourceDoctors,
		ResourceID: doctorID,
		Detail:     fmt.Sprintf("doctor %s added by admin", request.FullName),
	})

	return BuildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, query *requests.QueryParams) ([]responses.Doctor, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, total, err := uc.DoctorRepository.FindAll(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, *BuildDoctorResponse(&doctors[i]))
	}
	return result, total, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
	}
	return BuildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) ListSpecializations(ctx context.Context) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListSpecializations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.DoctorRepository.ListSpecializations(ctx)
}

func BuildDoctorResponse(doctor *models.DoctorProfile) *responses.Doctor {
	return &responses.Doctor{
		ID:              doctor.ID,
		FullName:        doctor.FullName,
		Specialization:  doctor.Specialization,
		Qualifications:  doctor.Qualifications,
		ExperienceYears: doctor.ExperienceYears,
		AvailableDays:   doctor.AvailableDays,
		AvailableStart:  doctor.AvailableStart,
		AvailableEnd:    doctor.AvailableEnd,
		ConsultationFee: doctor.ConsultationFee,
		IsAvailable:     doctor.IsAvailable,
	}
}
