package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedLocation(t *testing.T) {
	loc, err := FixedLocation("+05:30")
	require.NoError(t, err)

	// 04:00 UTC is 09:30 in UTC+05:30
	utc := time.Date(2025, 12, 1, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "09:30:00", utc.In(loc).Format(TimeLayout))
}

func TestFixedLocation_Negative(t *testing.T) {
	loc, err := FixedLocation("-03:00")
	require.NoError(t, err)

	utc := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "09:00:00", utc.In(loc).Format(TimeLayout))
}

func TestFixedLocation_Invalid(t *testing.T) {
	for _, bad := range []string{"", "5:30", "+5:30", "+0530", "+25:00", "UTC"} {
		_, err := FixedLocation(bad)
		assert.Error(t, err, "offset %q should be rejected", bad)
	}
}

func TestMinutesOfDay(t *testing.T) {
	loc, err := FixedLocation("+05:30")
	require.NoError(t, err)

	// 04:15 UTC -> 09:45 civil
	utc := time.Date(2025, 12, 1, 4, 15, 0, 0, time.UTC)
	assert.Equal(t, 9*60+45, MinutesOfDay(utc, loc))
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, got)

	got, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = ParseClock("9:30")
	assert.Error(t, err)

	_, err = ParseClock("24:00")
	assert.Error(t, err)
}
