package users

import (
	"context"
	"testing"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.User, int, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) Refresh(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

var (
	testUserRepository = new(MockUserRepository)
	testSessionService = new(MockSessionService)
	testUserUsecase    = NewUserUsecase(testUserRepository, testSessionService, zap.NewNop())
)

func userSession() *models.Session {
	return &models.Session{SessionID: "sess-1", UserID: "user-1", Username: "pat", Role: constvars.RolePatient}
}

func TestUserUsecase_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored user", func(t *testing.T) {
		testUserRepository.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			Email:    "pat@example.com",
			Username: "pat",
			Role:     constvars.RolePatient,
		}, nil).Once()

		response, err := testUserUsecase.GetProfile(ctx, userSession())

		require.NoError(t, err)
		assert.Equal(t, "pat@example.com", response.Email)
	})

	t.Run("deleted user", func(t *testing.T) {
		testUserRepository.On("FindByID", mock.Anything, "user-1").Return(nil, nil).Once()

		_, err := testUserUsecase.GetProfile(ctx, userSession())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestUserUsecase_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and refreshes the session", func(t *testing.T) {
		session := userSession()
		testUserRepository.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			Username: "pat",
		}, nil).Once()
		testUserRepository.On("FindByUsername", mock.Anything, "newpat").Return(nil, nil).Once()
		testUserRepository.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Username == "newpat"
		})).Return(nil).Once()
		testSessionService.On("Refresh", mock.Anything, session).Return(nil).Once()

		response, err := testUserUsecase.UpdateProfile(ctx, session, &requests.UpdateProfile{Username: "newpat"})

		require.NoError(t, err)
		assert.Equal(t, "newpat", response.Username)
		assert.Equal(t, "newpat", session.Username)
	})

	t.Run("taken username rejected", func(t *testing.T) {
		testUserRepository.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			Username: "pat",
		}, nil).Once()
		testUserRepository.On("FindByUsername", mock.Anything, "taken").
			Return(&models.User{ID: "user-2", Username: "taken"}, nil).Once()

		_, err := testUserUsecase.UpdateProfile(ctx, userSession(), &requests.UpdateProfile{Username: "taken"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestUserUsecase_ChangePassword(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("OldPass123!")
	require.NoError(t, err)

	t.Run("accepts the right current password", func(t *testing.T) {
		testUserRepository.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			Password: hashed,
		}, nil).Once()
		testUserRepository.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return utils.CheckPasswordHash("NewPass123!", user.Password)
		})).Return(nil).Once()

		err := testUserUsecase.ChangePassword(ctx, userSession(), &requests.ChangePassword{
			CurrentPassword: "OldPass123!",
			NewPassword:     "NewPass123!",
		})

		require.NoError(t, err)
		testUserRepository.AssertExpectations(t)
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		testUserRepository.On("FindByID", mock.Anything, "user-1").Return(&models.User{
			ID:       "user-1",
			Password: hashed,
		}, nil).Once()

		err := testUserUsecase.ChangePassword(ctx, userSession(), &requests.ChangePassword{
			CurrentPassword: "nope",
			NewPassword:     "NewPass123!",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestUserUsecase_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the paginated directory", func(t *testing.T) {
		query := &requests.QueryParams{Page: 1, PageSize: 10, Role: constvars.RolePatient}
		testUserRepository.On("FindAll", mock.Anything, query).Return([]models.User{
			{ID: "user-1", Username: "pat", Role: constvars.RolePatient},
			{ID: "user-2", Username: "sam", Role: constvars.RolePatient},
		}, 2, nil).Once()

		users, total, err := testUserUsecase.ListUsers(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, users, 2)
		assert.Equal(t, "pat", users[0].Username)
	})

	t.Run("propagates a storage failure", func(t *testing.T) {
		query := &requests.QueryParams{Page: 1, PageSize: 10}
		testUserRepository.On("FindAll", mock.Anything, query).
			Return(nil, 0, exceptions.ErrMongoDBFindDocument(assert.AnError)).Once()

		_, _, err := testUserUsecase.ListUsers(ctx, query)

		require.Error(t, err)
	})
}
