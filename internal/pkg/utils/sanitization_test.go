package utils

import (
	"testing"

	"care4u-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeUpdateScheduleRequest(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		request := &requests.UpdateSchedule{
			AvailableDays:   []string{" Monday "},
			StartTime:       " 09:00",
			EndTime:         "17:00 ",
			ConsultationFee: " 250000 ",
		}

		SanitizeUpdateScheduleRequest(request)

		assert.Equal(t, []string{"Monday"}, request.AvailableDays)
		assert.Equal(t, "09:00", request.StartTime)
		assert.Equal(t, "17:00", request.EndTime)
		assert.Equal(t, "250000", request.ConsultationFee)
	})

	t.Run("splits comma joined day strings", func(t *testing.T) {
		request := &requests.UpdateSchedule{
			AvailableDays: []string{"Monday, Wednesday,Friday"},
		}

		SanitizeUpdateScheduleRequest(request)

		assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, request.AvailableDays)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		request := &requests.UpdateSchedule{
			AvailableDays: []string{"Monday,,", " ", "Tuesday"},
		}

		SanitizeUpdateScheduleRequest(request)

		assert.Equal(t, []string{"Monday", "Tuesday"}, request.AvailableDays)
	})
}
