package contracts

import (
	"context"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error)
	ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error
	ListUsers(ctx context.Context, query *requests.QueryParams) ([]responses.User, int, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.User, int, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
}
