package schedules

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/dto/responses"
	"care4u-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockScheduleUsecase struct {
	mock.Mock
}

func (m *MockScheduleUsecase) UpdateSchedule(ctx context.Context, session *models.Session, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func (m *MockScheduleUsecase) GetSchedule(ctx context.Context, session *models.Session) (*responses.Schedule, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Schedule), args.Error(1)
}

func newScheduleRequest(t *testing.T, body interface{}, session *models.Session) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPut, "/schedule", bytes.NewReader(payload))
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if session != nil {
		ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		request = request.WithContext(ctx)
	}
	return request
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) responses.ResponseDTO {
	t.Helper()
	var response responses.ResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestScheduleController_UpdateSchedule(t *testing.T) {
	logger := zap.NewNop()
	session := &models.Session{UserID: "user-1", Role: constvars.RoleDoctor, DoctorID: "doctor-1"}

	body := map[string]interface{}{
		"available_days":   []string{"Monday"},
		"start_time":       "09:00",
		"end_time":         "17:00",
		"consultation_fee": "250000",
	}

	t.Run("successful update", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		mockUsecase.On("UpdateSchedule", mock.Anything, session, mock.AnythingOfType("*requests.UpdateSchedule")).
			Return(&responses.Schedule{
				AvailableDays:   []string{"Monday"},
				AvailableTime:   "09:00-17:00",
				StartTime:       "09:00",
				EndTime:         "17:00",
				ConsultationFee: "250000",
			}, nil)

		controller := NewScheduleController(mockUsecase, logger)
		recorder := httptest.NewRecorder()

		controller.UpdateSchedule(recorder, newScheduleRequest(t, body, session))

		assert.Equal(t, http.StatusOK, recorder.Code)
		response := decodeResponse(t, recorder)
		assert.True(t, response.Success)
		assert.Equal(t, constvars.UpdateScheduleSuccess, response.Message)
	})

	t.Run("validation rejection keeps status 200", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		mockUsecase.On("UpdateSchedule", mock.Anything, session, mock.AnythingOfType("*requests.UpdateSchedule")).
			Return(nil, exceptions.ErrScheduleInvalidDay(fmt.Errorf("unknown weekday")))

		controller := NewScheduleController(mockUsecase, logger)
		recorder := httptest.NewRecorder()

		controller.UpdateSchedule(recorder, newScheduleRequest(t, body, session))

		assert.Equal(t, http.StatusOK, recorder.Code)
		response := decodeResponse(t, recorder)
		assert.False(t, response.Success)
		assert.Equal(t, constvars.ErrClientScheduleInvalidDay, response.Message)
	})

	t.Run("missing session returns 401", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		controller := NewScheduleController(mockUsecase, logger)
		recorder := httptest.NewRecorder()

		controller.UpdateSchedule(recorder, newScheduleRequest(t, body, nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockUsecase.AssertNotCalled(t, "UpdateSchedule", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		mockUsecase.On("UpdateSchedule", mock.Anything, session, mock.AnythingOfType("*requests.UpdateSchedule")).
			Return(nil, exceptions.ErrScheduleStorage(errors.New("write conflict")))

		controller := NewScheduleController(mockUsecase, logger)
		recorder := httptest.NewRecorder()

		controller.UpdateSchedule(recorder, newScheduleRequest(t, body, session))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		controller := NewScheduleController(mockUsecase, logger)
		recorder := httptest.NewRecorder()

		request := httptest.NewRequest(http.MethodPut, "/schedule", bytes.NewReader([]byte("{not json")))
		ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)

		controller.UpdateSchedule(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockUsecase.AssertNotCalled(t, "UpdateSchedule", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScheduleController_GetSchedule(t *testing.T) {
	logger := zap.NewNop()
	session := &models.Session{UserID: "user-1", Role: constvars.RoleDoctor, DoctorID: "doctor-1"}

	t.Run("returns stored schedule", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		mockUsecase.On("GetSchedule", mock.Anything, session).
			Return(&responses.Schedule{
				AvailableDays:   []string{"Monday"},
				AvailableTime:   "09:00-17:00",
				StartTime:       "09:00",
				EndTime:         "17:00",
				ConsultationFee: "250000",
			}, nil)

		controller := NewScheduleController(mockUsecase, logger)
		recorder := httptest.NewRecorder()

		request := httptest.NewRequest(http.MethodGet, "/schedule", nil)
		ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)

		controller.GetSchedule(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
		response := decodeResponse(t, recorder)
		assert.True(t, response.Success)
	})

	t.Run("missing session returns 401", func(t *testing.T) {
		mockUsecase := new(MockScheduleUsecase)
		controller := NewScheduleController(mockUsecase, logger)
		recorder := httptest.NewRecorder()

		controller.GetSchedule(recorder, httptest.NewRequest(http.MethodGet, "/schedule", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
