package team

import "time"

// RosterMember is one rep in a manager's team list.
type RosterMember struct {
	UserID   string  `json:"user_id"`
	FullName string  `json:"full_name"`
	Region   *string `json:"region,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

type RosterResponse struct {
	Members   []RosterMember `json:"members"`
	FetchedAt time.Time      `json:"fetched_at"`
	FromCache bool           `json:"from_cache"`
}
