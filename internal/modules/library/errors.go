package library

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("record not found")
	ErrInvalidState        = errors.New("unknown book state")
	ErrLoanAlreadyReturned = errors.New("loan already returned")
)
