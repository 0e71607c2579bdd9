package visit

import "errors"

var (
	ErrVisitNotFound = errors.New("Visit not found")
)
