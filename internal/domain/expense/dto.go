package expense

import (
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

type CreateLineItemRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
}

type CreateExpenseRequest struct {
	Date          string                  `json:"date"` // YYYY-MM-DD, defaults to today
	Items         []CreateLineItemRequest `json:"items"`
	Description   *string                 `json:"description,omitempty"`
	ReceiptPhotos []string                `json:"receipt_photos,omitempty"`
}

type LineItemResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Description *string         `json:"description,omitempty"`
}

type ExpenseResponse struct {
	ID            string             `json:"id"`
	Date          dates.Date         `json:"date"`
	Total         decimal.Decimal    `json:"total"`
	Items         []LineItemResponse `json:"items"`
	Description   *string            `json:"description,omitempty"`
	ReceiptPhotos []string           `json:"receipt_photos,omitempty"`
	Status        review.Status      `json:"status"`
	Comment       *string            `json:"comment,omitempty"`
	UserName      *string            `json:"user_name,omitempty"`
}

func ToResponse(e Expense) ExpenseResponse {
	items := make([]LineItemResponse, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, LineItemResponse{
			Amount:      item.Amount,
			Category:    item.Category,
			Description: item.Description,
		})
	}
	return ExpenseResponse{
		ID:            e.ID,
		Date:          e.Date,
		Total:         e.Total(),
		Items:         items,
		Description:   e.Description,
		ReceiptPhotos: e.ReceiptPhotos,
		Status:        e.Status,
		Comment:       e.Comment,
		UserName:      e.UserName,
	}
}
