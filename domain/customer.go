package domain

// CustomerStatus gates what a customer may do once logged in.
type CustomerStatus string

const (
	CustomerActive     CustomerStatus = "active"
	CustomerRestricted CustomerStatus = "restricted"
)

func (s CustomerStatus) Valid() bool {
	return s == CustomerActive || s == CustomerRestricted
}

// Customer is an account holder. AccountNumber and Email are unique across the
// collection at creation time. Balance is held in minor currency units (cents)
// and is mutated only as a side effect of transaction creation.
type Customer struct {
	Envelope
	AccountNumber string         `json:"accountNumber"`
	FullName      string         `json:"fullName"`
	Email         string         `json:"email"`
	Password      string         `json:"password"`
	Balance       int64          `json:"balance"`
	Status        CustomerStatus `json:"status"`
	Photo         string         `json:"photo,omitempty"`
}

func (c *Customer) IsActive() bool {
	return c != nil && c.Status == CustomerActive
}
