package punchlog

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchlab/punchclock-backend-go/internal/domain/punch"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("+05:30", slog.Default())
	require.NoError(t, err)
	return p
}

func TestParseLine_TabSeparated(t *testing.T) {
	p := newTestParser(t)

	ev, ok := p.ParseLine("5\t2025-12-01 09:47:09\t1\t0\t1\t0")
	require.True(t, ok)

	assert.Equal(t, 5, ev.EmployeeID)
	assert.Equal(t, 1, ev.VerifyType)
	assert.Equal(t, 0, ev.InOutFlag)
	assert.Equal(t, 1, ev.WorkCode)

	// Wall-clock digits are civil-local in +05:30, so the instant is 04:17:09 UTC.
	assert.Equal(t, time.Date(2025, 12, 1, 4, 17, 9, 0, time.UTC), ev.Timestamp.UTC())
}

func TestParseLine_DateAndTimeAsSeparateTokens(t *testing.T) {
	p := newTestParser(t)

	// Some firmware pads date and time apart with multiple spaces.
	ev, ok := p.ParseLine("12   2025-12-01   18:30:00   15")
	require.True(t, ok)

	assert.Equal(t, 12, ev.EmployeeID)
	assert.Equal(t, punch.VerifyFace, ev.VerifyType)
	assert.Equal(t, time.Date(2025, 12, 1, 13, 0, 0, 0, time.UTC), ev.Timestamp.UTC())
}

func TestParseLine_OptionalFieldDefaults(t *testing.T) {
	p := newTestParser(t)

	ev, ok := p.ParseLine("7\t2025-12-01 08:00:00")
	require.True(t, ok)

	assert.Equal(t, 1, ev.VerifyType)
	assert.Equal(t, 0, ev.InOutFlag)
	assert.Equal(t, 1, ev.WorkCode)
	assert.Equal(t, 0, ev.Reserved)

	// Non-numeric trailing fields also fall back to defaults.
	ev, ok = p.ParseLine("7\t2025-12-01 08:00:00\tabc\txyz")
	require.True(t, ok)
	assert.Equal(t, 1, ev.VerifyType)
	assert.Equal(t, 0, ev.InOutFlag)
}

func TestParseLine_Skips(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace only", "   \t  "},
		{"non-numeric id", "abc\t2025-12-01 09:00:00"},
		{"zero id", "0\t2025-12-01 09:00:00"},
		{"negative id", "-3\t2025-12-01 09:00:00"},
		{"missing timestamp", "5"},
		{"date without time", "5\t2025-12-01"},
		{"garbage timestamp", "5\t2025-13-41 99:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := p.ParseLine(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParse_SkipsBadLinesAndContinues(t *testing.T) {
	p := newTestParser(t)

	input := strings.Join([]string{
		"5\t2025-12-01 09:00:00\t1\t0\t1\t0",
		"not a punch line at all",
		"",
		"5\t2025-12-01 18:30:00\t1\t0\t1\t0",
		"9\t2025-12-02 08:55:12",
	}, "\n")

	events, err := p.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, 5, events[0].EmployeeID)
	assert.Equal(t, 5, events[1].EmployeeID)
	assert.Equal(t, 9, events[2].EmployeeID)
}

func TestParse_AllGarbageFails(t *testing.T) {
	p := newTestParser(t)

	input := "garbage\nmore garbage\n\n"
	_, err := p.Parse(context.Background(), strings.NewReader(input))
	assert.ErrorIs(t, err, punch.ErrNoValidRecords)
}

func TestNewParser_RejectsBadOffset(t *testing.T) {
	_, err := NewParser("IST", nil)
	assert.Error(t, err)

	_, err = NewParser("+5:30", nil)
	assert.Error(t, err)
}
