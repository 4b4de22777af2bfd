package address

// Address is snapshotted into orders at checkout; a later edit must not
// retroactively alter historical orders.
type Address struct {
	ID           string `json:"id,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	District     string `json:"district,omitempty"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"is_default,omitempty"`
}

type CreateAddressInput struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	District     string
	PostalCode   string
	Country      string
	SetAsDefault bool
}
