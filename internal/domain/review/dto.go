package review

type PendingItemsResponse struct {
	Items  []PendingItem `json:"items"`
	Counts PendingCounts `json:"counts"`
}

type RejectItemRequest struct {
	Comment *string `json:"comment,omitempty"`
}

// Decision records who resolved an item and how.
type Decision struct {
	ItemID     string
	Type       ItemType
	ReviewerID string
	Comment    *string
}
