package review

import (
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

// Status is the review state of a submitted item. Approved and rejected
// are terminal; no transition leaves them.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ItemType discriminates the two reviewable submission kinds.
type ItemType string

const (
	ItemSheets  ItemType = "sheets"
	ItemExpense ItemType = "expense"
)

// PendingItem is a manager-facing view of one submission awaiting review.
// Exactly one of SheetsCount or Amount is set, per Type.
type PendingItem struct {
	ID            string           `json:"id"`
	Type          ItemType         `json:"type"`
	UserID        string           `json:"user_id"`
	UserName      string           `json:"user_name"`
	Date          dates.Date       `json:"date"`
	SheetsCount   *int             `json:"sheets_count,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Catalog       *string          `json:"catalog,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Description   *string          `json:"description,omitempty"`
	ReceiptPhotos []string         `json:"receipt_photos,omitempty"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}

// PendingCounts are the per-type badge counts shown on the review tabs.
type PendingCounts struct {
	Sheets   int `json:"sheets"`
	Expenses int `json:"expenses"`
	Total    int `json:"total"`
}
