package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/contracts"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository   contracts.UserRepository
	DoctorRepository contracts.DoctorRepository
	SessionService   contracts.SessionService
	LoginLimiter     contracts.ResourceLimiter
	AuditService     contracts.AuditService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	loginLimiter contracts.ResourceLimiter,
	auditService contracts.AuditService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:   userRepository,
			DoctorRepository: doctorRepository,
			SessionService:   sessionService,
			LoginLimiter:     loginLimiter,
			AuditService:     auditService,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", request.Role),
	)

	if request.Role == constvars.RoleAdmin {
		configuredKey := uc.InternalConfig.Auth.AdminRegistrationKey
		if configuredKey == "" || request.AdminKey != configuredKey {
			return nil, exceptions.ErrInvalidAdminKey(fmt.Errorf("admin registration key mismatch"))
		}
	}

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
		Role:     request.Role,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	response := &responses.RegisterUser{
		UserID:   userID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	}

	if request.Role == constvars.RoleDoctor {
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

		user.DoctorID = doctorID
		if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
			return nil, err
		}
		response.DoctorID = doctorID
	}

	uc.AuditService.Record(ctx, &models.AuditLog{
		UserID:     userID,
		Action:     constvars.AuditActionCreateUser,
		Resource:   constvars.ResourceUsers,
		ResourceID: userID,
		Detail:     fmt.Sprintf("registered as %s", user.Role),
	})

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)
	return response, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser, clientIP string) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// The window is keyed by the submitted email so an attacker cannot
	// dodge it by rotating addresses; the client IP is kept for the logs.
	allowed, err := uc.LoginLimiter.Allow(ctx, constvars.LimiterGroupLogin, request.Email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.Log.Warn("authUsecase.LoginUser throttled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("client_ip", clientIP),
		)
		return nil, exceptions.ErrTooManyLoginAttempts(fmt.Errorf("login quota exhausted for %s", request.Email))
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("credentials rejected"))
	}

	expiresAt := time.Now().Add(time.Duration(uc.InternalConfig.Auth.SessionExpiredTimeInHours) * time.Hour)
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		DoctorID:  user.DoctorID,
		ExpiresAt: expiresAt,
	}

	if user.DoctorID != "" {
		doctor, err := uc.DoctorRepository.FindByID(ctx, user.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			session.Doctor = &models.DoctorSnapshot{
				FullName:        doctor.FullName,
				Specialization:  doctor.Specialization,
				AvailableDays:   doctor.AvailableDays,
				AvailableStart:  doctor.AvailableStart,
				AvailableEnd:    doctor.AvailableEnd,
				ConsultationFee: doctor.ConsultationFee,
			}
		}
	}

	if err := uc.SessionService.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	if err := uc.LoginLimiter.Reset(ctx, constvars.LimiterGroupLogin, request.Email); err != nil {
		uc.Log.Warn("authUsecase.LoginUser could not reset limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", user.ID),
	)

	return &responses.LoginUser{
		Token:     token,
		Role:      user.Role,
		Username:  user.Username,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.SessionService.Destroy(ctx, sessionID)
}
