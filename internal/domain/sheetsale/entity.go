package sheetsale

import (
	"time"

	"github.com/fieldtrack/fieldsales-backend-go/internal/domain/review"
	"github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"
)

// Catalog is a named product line sheet sales are attributed to. The set is
// closed: aggregation only breaks down by these catalogs.
type Catalog string

const (
	CatalogFineDecor Catalog = "fine_decor"
	CatalogHeritage  Catalog = "heritage"
	CatalogDecoPlus  Catalog = "deco_plus"
	CatalogExteria   Catalog = "exteria"
)

// KnownCatalogs returns the catalog set in display order.
func KnownCatalogs() []Catalog {
	return []Catalog{CatalogFineDecor, CatalogHeritage, CatalogDecoPlus, CatalogExteria}
}

// ParseCatalog reports whether s names a known catalog.
func ParseCatalog(s string) (Catalog, bool) {
	for _, c := range KnownCatalogs() {
		if Catalog(s) == c {
			return c, true
		}
	}
	return Catalog(s), false
}

// UnknownCatalogPolicy states how aggregation treats a sale whose catalog is
// not in the known set.
type UnknownCatalogPolicy int

const (
	// UnknownCatalogCountTotalOnly keeps the sale's sheets in the grand total
	// but omits them from the per-catalog breakdown. This mirrors how the
	// product has always reported; revisit only with product sign-off.
	UnknownCatalogCountTotalOnly UnknownCatalogPolicy = iota
)

type SheetSale struct {
	ID          string
	UserID      string
	AccountID   *string
	Catalog     Catalog
	SheetsCount int
	Date        dates.Date
	Status      review.Status
	ReviewedBy  *string
	ReviewedAt  *time.Time
	Comment     *string
	CreatedAt   time.Time

	// DTO
	UserName *string
}
