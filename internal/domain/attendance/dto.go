package attendance

import "time"

type CheckRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type EventResponse struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

func ToResponse(e Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Type:      e.Type,
		Date:      e.Date.String(),
		Timestamp: e.Timestamp,
	}
}
