package review

import "errors"

var (
	ErrItemNotFound = errors.New("Pending item not found")
	// ErrAlreadyProcessed is returned when a decision targets an item another
	// reviewer already resolved. Callers treat it as "stale item, refresh".
	ErrAlreadyProcessed = errors.New("Item already processed")
	ErrUnknownItemType  = errors.New("Unknown pending item type")
)
