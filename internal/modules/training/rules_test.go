package training

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) *time.Time {
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestTotalRevenue(t *testing.T) {
	assert.Equal(t, int64(5_000_000), TotalRevenue(5, 1_000_000))
	assert.Equal(t, int64(0), TotalRevenue(0, 1_000_000))
	assert.Equal(t, int64(0), TotalRevenue(5, 0))
}

func TestValidateClass(t *testing.T) {
	assert.NoError(t, ValidateClass("ABC", nil, nil))
	assert.NoError(t, ValidateClass("Go Programming", d(2024, 9, 1), d(2024, 12, 1)))
	// same start and end is fine
	assert.NoError(t, ValidateClass("ABC", d(2024, 9, 1), d(2024, 9, 1)))

	assert.ErrorIs(t, ValidateClass("", nil, nil), ErrEmptyName)
	assert.ErrorIs(t, ValidateClass("   ", nil, nil), ErrEmptyName)
	assert.ErrorIs(t, ValidateClass("AB", nil, nil), ErrNameTooShort)
	assert.ErrorIs(t, ValidateClass("ABC", d(2024, 12, 1), d(2024, 9, 1)), ErrInvalidDateRange)
}

func TestValidateClass_CountsRunes(t *testing.T) {
	// three multi-byte runes pass even though the byte length differs
	assert.NoError(t, ValidateClass("日本語", nil, nil))
	assert.ErrorIs(t, ValidateClass("日本", nil, nil), ErrNameTooShort)
}

func TestSubjectCode(t *testing.T) {
	code, ok := SubjectCode("golang fundamentals")
	assert.True(t, ok)
	assert.Equal(t, "GOL", code)

	code, ok = SubjectCode("db")
	assert.False(t, ok)
	assert.Equal(t, "", code)

	code, ok = SubjectCode("")
	assert.False(t, ok)
	assert.Equal(t, "", code)
}
