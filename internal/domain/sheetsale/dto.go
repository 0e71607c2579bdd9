package sheetsale

import (
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

type CreateSheetSaleRequest struct {
	AccountID   *string `json:"account_id,omitempty"`
	Catalog     string  `json:"catalog"`
	SheetsCount int     `json:"sheets_count"`
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
}

type SheetSaleResponse struct {
	ID          string        `json:"id"`
	Catalog     Catalog       `json:"catalog"`
	SheetsCount int           `json:"sheets_count"`
	Date        dates.Date    `json:"date"`
	Status      review.Status `json:"status"`
	Comment     *string       `json:"comment,omitempty"`
	UserName    *string       `json:"user_name,omitempty"`
}

func ToResponse(s SheetSale) SheetSaleResponse {
	return SheetSaleResponse{
		ID:          s.ID,
		Catalog:     s.Catalog,
		SheetsCount: s.SheetsCount,
		Date:        s.Date,
		Status:      s.Status,
		Comment:     s.Comment,
		UserName:    s.UserName,
	}
}
