package notification

import "time"

type Type string

const (
	TypeItemApproved   Type = "item_approved"
	TypeItemRejected   Type = "item_rejected"
	TypeTargetAssigned Type = "target_assigned"
	TypeTargetRenewed  Type = "target_renewed"
)

type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	CreatedAt   time.Time
}
