package store

import (
	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
)

// Database is the whole persisted value: one typed slice per collection,
// serialized as a single JSON blob under the store's key. The set of
// collections is closed; access goes through the typed Collection handles on
// Store, so an invalid collection is a compile-time error, not a runtime miss.
type Database struct {
	Admins        []domain.Admin         `json:"admins"`
	Customers     []domain.Customer      `json:"customers"`
	Transactions  []domain.Transaction   `json:"transactions"`
	Charges       []domain.Charge        `json:"charges"`
	TransferCodes []domain.TransferCodes `json:"transferCodes"`
	Offers        []domain.Offer         `json:"offers"`
	Leads         []domain.Lead          `json:"leads"`
}

// NewDatabase returns a fully-shaped empty database.
func NewDatabase() *Database {
	db := &Database{}
	db.normalize()
	return db
}

// normalize guarantees every collection is present as an empty, non-nil
// sequence, so callers never see a partially-shaped value.
func (db *Database) normalize() {
	if db.Admins == nil {
		db.Admins = []domain.Admin{}
	}
	if db.Customers == nil {
		db.Customers = []domain.Customer{}
	}
	if db.Transactions == nil {
		db.Transactions = []domain.Transaction{}
	}
	if db.Charges == nil {
		db.Charges = []domain.Charge{}
	}
	if db.TransferCodes == nil {
		db.TransferCodes = []domain.TransferCodes{}
	}
	if db.Offers == nil {
		db.Offers = []domain.Offer{}
	}
	if db.Leads == nil {
		db.Leads = []domain.Lead{}
	}
}
