package visit

import (
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

// Visit is one logged call on an account. The account type is denormalized
// onto the record so stats queries never join against a possibly-edited
// account row.
type Visit struct {
	ID          string
	UserID      string
	AccountID   string
	AccountName string
	AccountType account.Type
	Date        dates.Date
	Purpose     *string
	Notes       *string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time

	// DTO
	UserName *string
}
