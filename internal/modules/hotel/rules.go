package hotel

import (
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/pkg/rules"
)

// The booking rule engine: pure functions over explicit inputs, invoked by
// the service at every write that touches one of their inputs.

// StayDuration returns the stay length in nights, counted in calendar
// days so clock times on the bound timestamps never shave a night off.
// It is zero when either date is unset; ValidateStay guards the ordering
// before anything is persisted.
func StayDuration(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	return rules.DaysBetween(*checkIn, *checkOut)
}

// ValidateStay rejects a check-out on or before the check-in.
func ValidateStay(checkIn, checkOut *time.Time) error {
	if checkIn == nil || checkOut == nil {
		return nil
	}
	if !checkOut.After(*checkIn) {
		return ErrInvalidDateRange
	}
	return nil
}

// TotalAmount is room price times nights plus the attached services.
func TotalAmount(pricePerNight int64, duration int, servicePrices []int64) int64 {
	total := pricePerNight * int64(duration)
	for _, p := range servicePrices {
		total += p
	}
	return total
}

// CheckRoom enforces the availability invariant. An occupied room blocks
// the write; a room under maintenance only produces an advisory warning.
func CheckRoom(status domain.RoomStatus) (*rules.Warning, error) {
	switch status {
	case domain.RoomOccupied:
		return nil, ErrRoomOccupied
	case domain.RoomMaintenance:
		return rules.Warn("ROOM_MAINTENANCE", "This room is under maintenance, please pick another room"), nil
	default:
		return nil, nil
	}
}

// SuggestCheckOut proposes the night after check-in as a default check-out.
func SuggestCheckOut(checkIn time.Time) time.Time {
	return checkIn.AddDate(0, 0, 1)
}
