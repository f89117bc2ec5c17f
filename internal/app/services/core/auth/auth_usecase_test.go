package auth

import (
	"context"
	"testing"

	"care4u-service/internal/app/config"
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

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.DoctorProfile) (string, error) {
	args := m.Called(ctx, doctorModel)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorProfile), args.Error(1)
}

func (m *MockDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorProfile), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.DoctorProfile, int, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.DoctorProfile), args.Int(1), args.Error(2)
}

func (m *MockDoctorRepository) ListSpecializations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDoctorRepository) UpdateSchedule(ctx context.Context, doctorID string, schedule models.Schedule) error {
	args := m.Called(ctx, doctorID, schedule)
	return args.Error(0)
}

func (m *MockDoctorRepository) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	args := m.Called(ctx, doctorID, available)
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

type MockResourceLimiter struct {
	mock.Mock
}

func (m *MockResourceLimiter) Allow(ctx context.Context, group, key string) (bool, error) {
	args := m.Called(ctx, group, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockResourceLimiter) Reset(ctx context.Context, group, key string) error {
	args := m.Called(ctx, group, key)
	return args.Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry *models.AuditLog) {
	m.Called(ctx, entry)
}

var (
	testUserRepository   = new(MockUserRepository)
	testDoctorRepository = new(MockDoctorRepository)
	testSessionService   = new(MockSessionService)
	testLoginLimiter     = new(MockResourceLimiter)
	testAuditService     = new(MockAuditService)
	testAuthUsecase      = NewAuthUsecase(
		testUserRepository,
		testDoctorRepository,
		testSessionService,
		testLoginLimiter,
		testAuditService,
		&config.InternalConfig{
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
			Auth: config.Auth{
				AdminRegistrationKey:      "super-secret-key",
				SessionExpiredTimeInHours: 24,
			},
		},
		zap.NewNop(),
	)
)

func assertStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, statusCode, customErr.StatusCode)
}

func TestAuthUsecase_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a patient", func(t *testing.T) {
		testUserRepository.On("FindByEmail", mock.Anything, "pat@example.com").Return(nil, nil).Once()
		testUserRepository.On("FindByUsername", mock.Anything, "pat").Return(nil, nil).Once()
		testUserRepository.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("user-1", nil).Once()
		testAuditService.On("Record", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Once()

		response, err := testAuthUsecase.RegisterUser(ctx, &requests.RegisterUser{
			Email:    "pat@example.com",
			Username: "pat",
			Password: "Str0ngPass!",
			Role:     constvars.RolePatient,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", response.UserID)
		assert.Empty(t, response.DoctorID)
	})

	t.Run("registers a doctor with an empty profile", func(t *testing.T) {
		testUserRepository.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil).Once()
		testUserRepository.On("FindByUsername", mock.Anything, "doc").Return(nil, nil).Once()
		testUserRepository.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("user-2", nil).Once()
		testDoctorRepository.On("CreateDoctor", mock.Anything, mock.MatchedBy(func(doctor *models.DoctorProfile) bool {
			return doctor.UserID == "user-2" && !doctor.IsAvailable && doctor.ConsultationFee == "0"
		})).Return("doctor-2", nil).Once()
		testUserRepository.On("UpdateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.DoctorID == "doctor-2"
		})).Return(nil).Once()
		testAuditService.On("Record", mock.Anything, mock.AnythingOfType("*models.AuditLog")).Once()

		response, err := testAuthUsecase.RegisterUser(ctx, &requests.RegisterUser{
			Email:          "doc@example.com",
			Username:       "doc",
			Password:       "Str0ngPass!",
			Role:           constvars.RoleDoctor,
			FullName:       "Dr. Example",
			Specialization: "Cardiology",
		})

		require.NoError(t, err)
		assert.Equal(t, "doctor-2", response.DoctorID)
		testDoctorRepository.AssertExpectations(t)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		testUserRepository.On("FindByEmail", mock.Anything, "pat@example.com").
			Return(&models.User{ID: "user-1", Email: "pat@example.com"}, nil).Once()

		_, err := testAuthUsecase.RegisterUser(ctx, &requests.RegisterUser{
			Email:    "pat@example.com",
			Username: "other",
			Password: "Str0ngPass!",
			Role:     constvars.RolePatient,
		})

		assertStatusCode(t, err, constvars.StatusBadRequest)
	})

	t.Run("admin key required for admin role", func(t *testing.T) {
		_, err := testAuthUsecase.RegisterUser(ctx, &requests.RegisterUser{
			Email:    "root@example.com",
			Username: "root",
			Password: "Str0ngPass!",
			Role:     constvars.RoleAdmin,
			AdminKey: "wrong-key",
		})

		assertStatusCode(t, err, constvars.StatusForbidden)
	})
}

func TestAuthUsecase_LoginUser(t *testing.T) {
	ctx := context.Background()
	hashed, err := utils.HashPassword("Str0ngPass!")
	require.NoError(t, err)

	storedUser := func() *models.User {
		return &models.User{
			ID:       "user-1",
			Email:    "pat@example.com",
			Username: "pat",
			Password: hashed,
			Role:     constvars.RolePatient,
		}
	}

	t.Run("returns a bearer token", func(t *testing.T) {
		testLoginLimiter.On("Allow", mock.Anything, constvars.LimiterGroupLogin, "pat@example.com").Return(true, nil).Once()
		testUserRepository.On("FindByEmail", mock.Anything, "pat@example.com").Return(storedUser(), nil).Once()
		testSessionService.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil).Once()
		testLoginLimiter.On("Reset", mock.Anything, constvars.LimiterGroupLogin, "pat@example.com").Return(nil).Once()

		response, err := testAuthUsecase.LoginUser(ctx, &requests.LoginUser{
			Email:    "pat@example.com",
			Password: "Str0ngPass!",
		}, "10.0.0.1")

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, constvars.RolePatient, response.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		testLoginLimiter.On("Allow", mock.Anything, constvars.LimiterGroupLogin, "pat@example.com").Return(true, nil).Once()
		testUserRepository.On("FindByEmail", mock.Anything, "pat@example.com").Return(storedUser(), nil).Once()

		_, err := testAuthUsecase.LoginUser(ctx, &requests.LoginUser{
			Email:    "pat@example.com",
			Password: "nope",
		}, "10.0.0.1")

		assertStatusCode(t, err, constvars.StatusUnauthorized)
	})

	t.Run("unknown email gets the same rejection", func(t *testing.T) {
		testLoginLimiter.On("Allow", mock.Anything, constvars.LimiterGroupLogin, "ghost@example.com").Return(true, nil).Once()
		testUserRepository.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()

		_, err := testAuthUsecase.LoginUser(ctx, &requests.LoginUser{
			Email:    "ghost@example.com",
			Password: "whatever",
		}, "10.0.0.1")

		assertStatusCode(t, err, constvars.StatusUnauthorized)
	})

	t.Run("throttle follows the account, not the address", func(t *testing.T) {
		// Drop call history from earlier subtests so AssertNotCalled only
		// sees calls made by this subtest; the mocks are package-level.
		testUserRepository.Calls = nil
		testLoginLimiter.On("Allow", mock.Anything, constvars.LimiterGroupLogin, "pat@example.com").Return(false, nil).Once()

		_, err := testAuthUsecase.LoginUser(ctx, &requests.LoginUser{
			Email:    "pat@example.com",
			Password: "Str0ngPass!",
		}, "10.0.0.9")

		assertStatusCode(t, err, constvars.StatusTooManyRequests)
		testUserRepository.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("doctor login carries the schedule snapshot", func(t *testing.T) {
		doctorUser := storedUser()
		doctorUser.Role = constvars.RoleDoctor
		doctorUser.DoctorID = "doctor-1"

		testLoginLimiter.On("Allow", mock.Anything, constvars.LimiterGroupLogin, "pat@example.com").Return(true, nil).Once()
		testUserRepository.On("FindByEmail", mock.Anything, "pat@example.com").Return(doctorUser, nil).Once()
		testDoctorRepository.On("FindByID", mock.Anything, "doctor-1").Return(&models.DoctorProfile{
			ID:             "doctor-1",
			FullName:       "Dr. Example",
			AvailableDays:  []string{"Monday"},
			AvailableStart: "09:00",
			AvailableEnd:   "17:00",
		}, nil).Once()
		testSessionService.On("Create", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			return session.Doctor != nil && session.Doctor.AvailableStart == "09:00"
		})).Return(nil).Once()
		testLoginLimiter.On("Reset", mock.Anything, constvars.LimiterGroupLogin, "pat@example.com").Return(nil).Once()

		_, err := testAuthUsecase.LoginUser(ctx, &requests.LoginUser{
			Email:    "pat@example.com",
			Password: "Str0ngPass!",
		}, "10.0.0.1")

		require.NoError(t, err)
		testSessionService.AssertExpectations(t)
	})
}

func TestAuthUsecase_LogoutUser(t *testing.T) {
	testSessionService.On("Destroy", mock.Anything, "sess-1").Return(nil).Once()

	err := testAuthUsecase.LogoutUser(context.Background(), "sess-1")

	require.NoError(t, err)
}
