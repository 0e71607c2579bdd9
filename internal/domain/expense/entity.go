package expense

import (
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
	"github.com/shopspring/decimal"
)

// Category is the closed set of expense line-item categories. Unknown
// values collapse into CategoryOther.
type Category string

const (
	CategoryTravel        Category = "travel"
	CategoryFood          Category = "food"
	CategoryAccommodation Category = "accommodation"
	CategoryOther         Category = "other"
)

// KnownCategories returns the categories in display order.
func KnownCategories() []Category {
	return []Category{CategoryTravel, CategoryFood, CategoryAccommodation, CategoryOther}
}

// ParseCategory maps a raw string onto the closed category set, defaulting
// to CategoryOther for unknown or missing values.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryTravel, CategoryFood, CategoryAccommodation, CategoryOther:
		return Category(s)
	default:
		return CategoryOther
	}
}

// LineItem is one costed entry inside an expense submission.
type LineItem struct {
	ID          string
	ExpenseID   string
	Amount      decimal.Decimal
	Category    Category
	Description *string
}

type Expense struct {
	ID            string
	UserID        string
	Date          dates.Date
	Items         []LineItem
	Description   *string
	ReceiptPhotos []string
	Status        review.Status
	ReviewedBy    *string
	ReviewedAt    *time.Time
	Comment       *string
	CreatedAt     time.Time

	// DTO
	UserName *string
}

// Total sums every line item's amount.
func (e Expense) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.Items {
		total = total.Add(item.Amount)
	}
	return total
}
