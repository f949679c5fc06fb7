package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
)

// errUnchanged aborts a Mutate without persisting when a lookup came up empty.
var errUnchanged = errors.New("store: unchanged")

// Record constrains PT to a record pointer exposing the shared envelope.
type Record[T any] interface {
	*T
	Meta() *domain.Envelope
}

// Collection is a typed handle over one named sequence in the database. It
// carries no state of its own; every operation goes through the Store. No
// uniqueness checking happens at this layer — that belongs to the domain
// services on top.
type Collection[T any, PT Record[T]] struct {
	name  string
	store *Store
	slice func(*Database) *[]T
}

// The closed set of collection handles.

func (s *Store) AdminsCollection() Collection[domain.Admin, *domain.Admin] {
	return Collection[domain.Admin, *domain.Admin]{
		name: "admins", store: s,
		slice: func(db *Database) *[]domain.Admin { return &db.Admins },
	}
}

func (s *Store) CustomersCollection() Collection[domain.Customer, *domain.Customer] {
	return Collection[domain.Customer, *domain.Customer]{
		name: "customers", store: s,
		slice: func(db *Database) *[]domain.Customer { return &db.Customers },
	}
}

func (s *Store) TransactionsCollection() Collection[domain.Transaction, *domain.Transaction] {
	return Collection[domain.Transaction, *domain.Transaction]{
		name: "transactions", store: s,
		slice: func(db *Database) *[]domain.Transaction { return &db.Transactions },
	}
}

func (s *Store) TransferCodesCollection() Collection[domain.TransferCodes, *domain.TransferCodes] {
	return Collection[domain.TransferCodes, *domain.TransferCodes]{
		name: "transferCodes", store: s,
		slice: func(db *Database) *[]domain.TransferCodes { return &db.TransferCodes },
	}
}

func (s *Store) OffersCollection() Collection[domain.Offer, *domain.Offer] {
	return Collection[domain.Offer, *domain.Offer]{
		name: "offers", store: s,
		slice: func(db *Database) *[]domain.Offer { return &db.Offers },
	}
}

func (s *Store) LeadsCollection() Collection[domain.Lead, *domain.Lead] {
	return Collection[domain.Lead, *domain.Lead]{
		name: "leads", store: s,
		slice: func(db *Database) *[]domain.Lead { return &db.Leads },
	}
}

// Name returns the collection's wire name.
func (c Collection[T, PT]) Name() string { return c.name }

// Create assigns a fresh id, stamps the audit timestamps, appends the record
// and persists. The stored record is returned.
func (c Collection[T, PT]) Create(payload T) (T, error) {
	err := c.store.Mutate(func(db *Database) error {
		payload = c.CreateIn(db, payload)
		return nil
	})
	return payload, err
}

// CreateIn applies Create's semantics inside an enclosing Mutate, so services
// can pair an insert with other record changes in one write.
func (c Collection[T, PT]) CreateIn(db *Database, payload T) T {
	meta := PT(&payload).Meta()
	meta.ID = uuid.NewString()
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	target := c.slice(db)
	*target = append(*target, payload)
	return payload
}

// Update applies the mutator to the record with the given id and persists.
// A missing id yields (nil, nil) and leaves the stored value untouched. The
// envelope id and creation timestamp survive the mutator; updatedAt is
// refreshed and never moves backwards.
func (c Collection[T, PT]) Update(id string, apply func(PT)) (*T, error) {
	var updated *T
	err := c.store.Mutate(func(db *Database) error {
		updated = c.UpdateIn(db, id, apply)
		if updated == nil {
			return errUnchanged
		}
		return nil
	})
	if errors.Is(err, errUnchanged) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateIn applies Update's semantics inside an enclosing Mutate. It returns
// a copy of the updated record, or nil when the id does not resolve.
func (c Collection[T, PT]) UpdateIn(db *Database, id string, apply func(PT)) *T {
	target := c.slice(db)
	for i := range *target {
		rec := PT(&(*target)[i])
		meta := rec.Meta()
		if meta.ID != id {
			continue
		}

		createdAt := meta.CreatedAt
		apply(rec)
		meta.ID = id
		meta.CreatedAt = createdAt

		now := time.Now().UTC()
		if now.Before(meta.UpdatedAt) {
			now = meta.UpdatedAt
		}
		meta.UpdatedAt = now

		cp := (*target)[i]
		return &cp
	}
	return nil
}

// Delete removes the matching record and reports whether a removal occurred.
// There are no cascading deletes across collections.
func (c Collection[T, PT]) Delete(id string) (bool, error) {
	err := c.store.Mutate(func(db *Database) error {
		target := c.slice(db)
		for i := range *target {
			if PT(&(*target)[i]).Meta().ID == id {
				*target = append((*target)[:i], (*target)[i+1:]...)
				return nil
			}
		}
		return errUnchanged
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// All returns every record in insertion order.
func (c Collection[T, PT]) All() ([]T, error) {
	return c.Find(nil)
}

// Find returns the records matching pred (all of them when pred is nil). The
// result is a fresh sequence deserialized for this call; it never aliases
// stored state.
func (c Collection[T, PT]) Find(pred func(*T) bool) ([]T, error) {
	out := []T{}
	err := c.store.View(func(db *Database) error {
		rows := *c.slice(db)
		for i := range rows {
			if pred == nil || pred(&rows[i]) {
				out = append(out, rows[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a copy of the record with the given id, or nil when absent.
func (c Collection[T, PT]) Get(id string) (*T, error) {
	var out *T
	err := c.store.View(func(db *Database) error {
		out = c.GetIn(db, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetIn resolves an id inside an enclosing View or Mutate.
func (c Collection[T, PT]) GetIn(db *Database, id string) *T {
	rows := *c.slice(db)
	for i := range rows {
		if PT(&rows[i]).Meta().ID == id {
			cp := rows[i]
			return &cp
		}
	}
	return nil
}
