package account

type CreateAccountRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
}

type UpdateAccountRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Type         *string `json:"type,omitempty"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
}

// ListAccountsFilter narrows the account list screen: free-text search on
// name plus an optional type pill.
type ListAccountsFilter struct {
	Search string
	Type   *Type
	Page   int
	Limit  int
}

type AccountResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         Type    `json:"type"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
}

func ToResponse(a Account) AccountResponse {
	return AccountResponse{
		ID:           a.ID,
		Name:         a.Name,
		Type:         a.Type,
		ContactName:  a.ContactName,
		ContactPhone: a.ContactPhone,
		Address:      a.Address,
		City:         a.City,
	}
}
