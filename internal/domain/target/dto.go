package target

import (
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
)

type UpsertTargetRequest struct {
	UserID        string                    `json:"-"`
	Month         string                    `json:"month"` // YYYY-MM
	ByAccountType map[account.Type]int      `json:"targets_by_account_type"`
	ByCatalog     map[sheetsale.Catalog]int `json:"targets_by_catalog"`
	AutoRenew     bool                      `json:"auto_renew"`
}

type TargetResponse struct {
	UserID        string                    `json:"user_id"`
	Month         string                    `json:"month"`
	ByAccountType map[account.Type]int      `json:"targets_by_account_type"`
	ByCatalog     map[sheetsale.Catalog]int `json:"targets_by_catalog"`
	AutoRenew     bool                      `json:"auto_renew"`
}

func ToResponse(t Target) TargetResponse {
	return TargetResponse{
		UserID:        t.UserID,
		Month:         t.Month,
		ByAccountType: t.ByAccountType,
		ByCatalog:     t.ByCatalog,
		AutoRenew:     t.AutoRenew,
	}
}

// AchievementState is the presentation hook for a progress row.
type AchievementState string

const (
	StateComplete   AchievementState = "complete"
	StateNearTarget AchievementState = "near_target"
	StateNormal     AchievementState = "normal"
)

// Progress is one category's achievement against its target. HasTarget
// distinguishes "no target set" from a genuine 0% against a real target.
type Progress struct {
	Category   string           `json:"category"`
	Achieved   int              `json:"achieved"`
	Target     int              `json:"target"`
	HasTarget  bool             `json:"has_target"`
	Percentage int              `json:"percentage"`
	State      AchievementState `json:"state"`
}

// ProgressReport is the full per-category breakdown plus the aggregate
// total over categories that have a target.
type ProgressReport struct {
	Month         string     `json:"month"`
	ByAccountType []Progress `json:"by_account_type"`
	ByCatalog     []Progress `json:"by_catalog"`
	Total         Progress   `json:"total"`
}
