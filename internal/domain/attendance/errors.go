package attendance

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("Already checked in today")
	ErrNotCheckedIn     = errors.New("No open check-in for today")
)
