package users

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

	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", session.UserID))
	}

	return buildUserResponse(user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", session.UserID))
	}

	if request.Username != "" && request.Username != user.Username {
		existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s taken", request.Username))
		}
		user.Username = request.Username
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	session.Username = user.Username
	if err := uc.SessionService.Refresh(ctx, session); err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error refreshing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return buildUserResponse(user), nil
}

func (uc *userUsecase) ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", session.UserID))
	}

	if !utils.CheckPasswordHash(request.CurrentPassword, user.Password) {
		return exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("current password mismatch"))
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.Password = hashed

	return uc.UserRepository.UpdateUser(ctx, user)
}

func (uc *userUsecase) ListUsers(ctx context.Context, query *requests.QueryParams) ([]responses.User, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, total, err := uc.UserRepository.FindAll(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.User, 0, len(users))
	for i := range users {
		result = append(result, *buildUserResponse(&users[i]))
	}
	return result, total, nil
}

func buildUserResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Phone:    user.Phone,
		Role:     user.Role,
		DoctorID: user.DoctorID,
	}
}
