package target

import (
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/account"
	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/sheetsale"
)

// Target is one rep's monthly quota sheet. A category absent from a map has
// no target set, which is distinct from a zero target. Values are always
// non-negative.
type Target struct {
	ID            string
	UserID        string
	Month         string // YYYY-MM
	ByAccountType map[account.Type]int
	ByCatalog     map[sheetsale.Catalog]int
	AutoRenew     bool
	SetByID       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
