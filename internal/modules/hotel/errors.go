package hotel

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrInvalidDateRange        = errors.New("check-out date must be after check-in date")
	ErrRoomOccupied            = errors.New("room is currently occupied")
	ErrNotFound                = errors.New("record not found")
	ErrDuplicate               = errors.New("duplicate value for unique field")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
