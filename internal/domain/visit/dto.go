package visit

import (
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type CreateVisitRequest struct {
	AccountID string   `json:"account_id"`
	Date      string   `json:"date"` // YYYY-MM-DD, defaults to today
	Purpose   *string  `json:"purpose,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type VisitResponse struct {
	ID          string       `json:"id"`
	AccountID   string       `json:"account_id"`
	AccountName string       `json:"account_name"`
	AccountType account.Type `json:"account_type"`
	Date        dates.Date   `json:"date"`
	Purpose     *string      `json:"purpose,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	UserName    *string      `json:"user_name,omitempty"`
}

func ToResponse(v Visit) VisitResponse {
	return VisitResponse{
		ID:          v.ID,
		AccountID:   v.AccountID,
		AccountName: v.AccountName,
		AccountType: v.AccountType,
		Date:        v.Date,
		Purpose:     v.Purpose,
		Notes:       v.Notes,
		UserName:    v.UserName,
	}
}
