package domain

// Charge models a standing fee schedule entry. The charges collection is
// reserved in the persisted layout; no service writes to it yet.
type Charge struct {
	Envelope
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}
