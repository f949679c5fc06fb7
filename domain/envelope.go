package domain

import "time"

// Envelope carries the identity and audit fields shared by every stored record.
// ID is assigned once at creation and never changes; UpdatedAt is refreshed on
// every successful write and never moves backwards.
type Envelope struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta exposes the envelope to generic collection code.
func (e *Envelope) Meta() *Envelope { return e }
