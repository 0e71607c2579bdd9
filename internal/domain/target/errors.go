package target

import "errors"

var (
	ErrTargetNotFound = errors.New("Target not found")
	ErrNegativeTarget = errors.New("Target values must not be negative")
	ErrInvalidMonth   = errors.New("Month must be in YYYY-MM format")
)
