package contracts

import (
	"context"

	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser, clientIP string) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, sessionID string) error
}
