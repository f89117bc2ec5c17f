package triage

import (
	"context"
	"errors"
	"testing"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

var (
	testDoctorRepository = new(MockDoctorRepository)
	testTriageUsecase    = NewTriageUsecase(testDoctorRepository, zap.NewNop())
)

func TestTriageUsecase_AnalyzeSymptoms(t *testing.T) {
	ctx := context.Background()

	t.Run("chest pain routes to cardiology with high urgency", func(t *testing.T) {
		testDoctorRepository.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.QueryParams")).
			Return([]models.DoctorProfile{
				{ID: "doctor-1", FullName: "Dr. Heart", Specialization: "Cardiology", IsAvailable: true},
				{ID: "doctor-2", FullName: "Dr. Away", Specialization: "Cardiology", IsAvailable: false},
			}, 2, nil).Once()

		result, err := testTriageUsecase.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "I have CHEST PAIN after climbing stairs"})

		require.NoError(t, err)
		assert.Equal(t, "Cardiology", result.Specialization)
		assert.Equal(t, "high", result.Urgency)
		assert.True(t, result.IsEmergency)
		assert.Equal(t, 100, result.SeverityScore)
		assert.Equal(t, emergencyAdvice, result.Advice)
		require.Len(t, result.Doctors, 1)
		assert.Equal(t, "doctor-1", result.Doctors[0].ID)
	})

	t.Run("emergency keyword without a specialty hit", func(t *testing.T) {
		testDoctorRepository.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.QueryParams")).
			Return([]models.DoctorProfile{}, 0, nil).Once()

		result, err := testTriageUsecase.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "difficulty breathing"})

		require.NoError(t, err)
		assert.True(t, result.IsEmergency)
		assert.Equal(t, 90, result.SeverityScore)
		assert.Equal(t, "General Medicine", result.Specialization)
	})

	t.Run("severity grows with keyword hits", func(t *testing.T) {
		testDoctorRepository.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.QueryParams")).
			Return([]models.DoctorProfile{}, 0, nil).Once()

		result, err := testTriageUsecase.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "fever, cough and a sore throat"})

		require.NoError(t, err)
		assert.False(t, result.IsEmergency)
		assert.Equal(t, 50, result.SeverityScore)
	})

	t.Run("emergency rule wins over milder overlap", func(t *testing.T) {
		testDoctorRepository.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.QueryParams")).
			Return([]models.DoctorProfile{}, 0, nil).Once()

		// "severe headache" matches Neurology before the General Medicine
		// rule sees the plain "headache" keyword.
		result, err := testTriageUsecase.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "severe headache since yesterday"})

		require.NoError(t, err)
		assert.Equal(t, "Neurology", result.Specialization)
	})

	t.Run("unknown symptoms fall back to general medicine", func(t *testing.T) {
		testDoctorRepository.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.QueryParams")).
			Return([]models.DoctorProfile{}, 0, nil).Once()

		result, err := testTriageUsecase.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "hiccups"})

		require.NoError(t, err)
		assert.Equal(t, "General Medicine", result.Specialization)
		assert.Equal(t, "low", result.Urgency)
		assert.False(t, result.IsEmergency)
		assert.Equal(t, 20, result.SeverityScore)
	})

	t.Run("doctor lookup failure still returns the advice", func(t *testing.T) {
		testDoctorRepository.On("FindAll", mock.Anything, mock.AnythingOfType("*requests.QueryParams")).
			Return(nil, 0, errors.New("mongo down")).Once()

		result, err := testTriageUsecase.AnalyzeSymptoms(ctx, &requests.AnalyzeSymptoms{Symptoms: "rash on my arm"})

		require.NoError(t, err)
		assert.Equal(t, "Dermatology", result.Specialization)
		assert.Empty(t, result.Doctors)
	})
}

func TestTriageRule_Matches(t *testing.T) {
	rule := models.TriageRule{Keywords: []string{"chest pain"}}

	assert.True(t, rule.Matches("Chest Pain and sweating"))
	assert.False(t, rule.Matches("stomach ache"))
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		name    string
		matches int
		want    int
	}{
		{name: "no hits keeps the base score", matches: 0, want: 20},
		{name: "each hit adds ten", matches: 3, want: 50},
		{name: "score is capped", matches: 7, want: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, severityFor(tt.matches))
		})
	}
}
