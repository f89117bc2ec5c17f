package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", hour: 0, minute: 0},
		{name: "last minute of the day", input: "23:59", hour: 23, minute: 59},
		{name: "morning", input: "09:30", hour: 9, minute: 30},
		{name: "single digit hour rejected", input: "9:30", wantErr: true},
		{name: "hour 24 rejected", input: "24:00", wantErr: true},
		{name: "minute 60 rejected", input: "10:60", wantErr: true},
		{name: "missing minutes rejected", input: "10", wantErr: true},
		{name: "trailing text rejected", input: "10:00 AM", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseTimeOfDay(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.hour, parsed.Hour)
			assert.Equal(t, tc.minute, parsed.Minute)
		})
	}
}

func TestTimeOfDay_Before(t *testing.T) {
	nine := TimeOfDay{Hour: 9}
	nineOhOne := TimeOfDay{Hour: 9, Minute: 1}

	assert.True(t, nine.Before(nineOhOne))
	assert.False(t, nineOhOne.Before(nine))
	assert.False(t, nine.Before(nine))
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay{Hour: 9, Minute: 5}.String())
}
