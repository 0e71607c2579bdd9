package account

import "time"

// Type is the closed set of business-account categories a rep visits.
// Unknown values collapse into TypeOther rather than leaking raw strings
// through the stats pipeline.
type Type string

const (
	TypeDistributor Type = "distributor"
	TypeDealer      Type = "dealer"
	TypeArchitect   Type = "architect"
	TypeOEM         Type = "oem"
	TypeOther       Type = "other"
)

// KnownTypes returns the account types in display order.
func KnownTypes() []Type {
	return []Type{TypeDistributor, TypeDealer, TypeArchitect, TypeOEM, TypeOther}
}

// ParseType maps a raw string onto the closed type set, defaulting to
// TypeOther for unknown or missing values.
func ParseType(s string) Type {
	switch Type(s) {
	case TypeDistributor, TypeDealer, TypeArchitect, TypeOEM, TypeOther:
		return Type(s)
	default:
		return TypeOther
	}
}

type Account struct {
	ID            string
	Name          string
	Type          Type
	ContactName   *string
	ContactPhone  *string
	Address       *string
	City          *string
	CreatedByID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
