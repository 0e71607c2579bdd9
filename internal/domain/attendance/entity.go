package attendance

import (
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type EventType string

const (
	EventCheckIn  EventType = "check_in"
	EventCheckOut EventType = "check_out"
)

// Event is a single check-in or check-out logged by a rep.
type Event struct {
	ID        string
	UserID    string
	Type      EventType
	Date      dates.Date
	Timestamp time.Time
	Latitude  *float64
	Longitude *float64
}
