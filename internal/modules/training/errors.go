package training

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrEmptyName        = errors.New("class name must not be empty")
	ErrNameTooShort     = errors.New("class name must be at least 3 characters")
	ErrInvalidDateRange = errors.New("end date must not precede start date")
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateCode    = errors.New("subject code already exists")
)
