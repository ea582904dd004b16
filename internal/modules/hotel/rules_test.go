package hotel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domain"
)

func d(y int, m time.Month, day int) *time.Time {
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestStayDuration(t *testing.T) {
	assert.Equal(t, 3, StayDuration(d(2024, 6, 1), d(2024, 6, 4)))
	assert.Equal(t, 1, StayDuration(d(2024, 6, 1), d(2024, 6, 2)))
	assert.Equal(t, 0, StayDuration(nil, d(2024, 6, 4)))
	assert.Equal(t, 0, StayDuration(d(2024, 6, 1), nil))
	assert.Equal(t, 0, StayDuration(nil, nil))
}

func TestStayDuration_IgnoresClockTimes(t *testing.T) {
	// a late check-in against an early check-out is still one night
	checkIn := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, StayDuration(&checkIn, &checkOut))

	checkOut = time.Date(2024, 6, 4, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, StayDuration(&checkIn, &checkOut))
}

func TestValidateStay(t *testing.T) {
	assert.NoError(t, ValidateStay(d(2024, 6, 1), d(2024, 6, 2)))
	assert.ErrorIs(t, ValidateStay(d(2024, 6, 2), d(2024, 6, 1)), ErrInvalidDateRange)
	// same-day checkout is rejected too
	assert.ErrorIs(t, ValidateStay(d(2024, 6, 1), d(2024, 6, 1)), ErrInvalidDateRange)
	// unset dates are not the date-range rule's business
	assert.NoError(t, ValidateStay(nil, d(2024, 6, 1)))
	assert.NoError(t, ValidateStay(d(2024, 6, 1), nil))
}

func TestTotalAmount(t *testing.T) {
	assert.Equal(t, int64(1_500_000), TotalAmount(500_000, 3, nil))
	assert.Equal(t, int64(1_630_000), TotalAmount(500_000, 3, []int64{80_000, 50_000}))
	assert.Equal(t, int64(130_000), TotalAmount(0, 0, []int64{80_000, 50_000}))
	assert.Equal(t, int64(0), TotalAmount(500_000, 0, nil))
}

func TestCheckRoom(t *testing.T) {
	warn, err := CheckRoom(domain.RoomAvailable)
	assert.NoError(t, err)
	assert.Nil(t, warn)

	warn, err = CheckRoom(domain.RoomOccupied)
	assert.ErrorIs(t, err, ErrRoomOccupied)
	assert.Nil(t, warn)

	warn, err = CheckRoom(domain.RoomMaintenance)
	assert.NoError(t, err)
	if assert.NotNil(t, warn) {
		assert.Equal(t, "ROOM_MAINTENANCE", warn.Code)
	}
}

func TestSuggestCheckOut(t *testing.T) {
	checkIn := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), SuggestCheckOut(checkIn))
}
