package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("123"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a"))
	assert.False(t, IsNumeric("-5"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-12-01")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("01-12-2025")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	_, ok := IsValidMonth("2025-11")
	assert.True(t, ok)

	_, ok = IsValidMonth("2025-11-01")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:30"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.False(t, IsValidClockTime("9:30"))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("09:60"))
}

func TestIsValidUTCOffset(t *testing.T) {
	assert.True(t, IsValidUTCOffset("+05:30"))
	assert.True(t, IsValidUTCOffset("-03:00"))
	assert.False(t, IsValidUTCOffset("05:30"))
	assert.False(t, IsValidUTCOffset("+5:30"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month is required"},
		{Field: "employee_id", Message: "employee_id must be numeric"},
	}

	assert.Equal(t, "month: month is required; employee_id: employee_id must be numeric", errs.Error())
	assert.Equal(t, map[string]string{
		"month":       "month is required",
		"employee_id": "employee_id must be numeric",
	}, errs.ToMap())
}
