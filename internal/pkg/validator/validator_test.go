package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("a"))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("rep@fieldtrack.in"))
	assert.False(t, IsValidEmail("rep@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-06-15")
	assert.True(t, ok)
	_, ok = IsValidDate("15-06-2024")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth("2024-06"))
	assert.False(t, IsValidMonth("2024-6"))
	assert.False(t, IsValidMonth("June 2024"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPhoneNumber("9876543210"))
	assert.True(t, IsValidPhoneNumber("+91 98765 43210"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("98765abcde"))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "month", Message: "must be YYYY-MM"},
		{Field: "sheets_count", Message: "must be positive"},
	}
	assert.Equal(t, "month: must be YYYY-MM; sheets_count: must be positive", errs.Error())
	assert.Equal(t, "must be positive", errs.ToMap()["sheets_count"])
}
