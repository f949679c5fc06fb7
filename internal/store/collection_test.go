package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
)

func TestCreateStampsEnvelope(t *testing.T) {
	s, _ := newTestStore(t)
	customers := s.CustomersCollection()

	first, err := customers.Create(domain.Customer{Email: "a@x.com"})
	require.NoError(t, err)
	second, err := customers.Create(domain.Customer{Email: "b@x.com"})
	require.NoError(t, err)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
	assert.False(t, first.CreatedAt.IsZero())

	rows, err := customers.All()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	s, _ := newTestStore(t)
	customers := s.CustomersCollection()

	created, err := customers.Create(domain.Customer{Email: "a@x.com", FullName: "Before"})
	require.NoError(t, err)

	updated, err := customers.Update(created.ID, func(c *domain.Customer) {
		c.FullName = "After"
		// Envelope writes from the mutator must not stick.
		c.ID = "forged"
		c.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "After", updated.FullName)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	stored, err := customers.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "After", stored.FullName)
}

func TestUpdatedAtNeverDecreases(t *testing.T) {
	s, _ := newTestStore(t)
	customers := s.CustomersCollection()

	created, err := customers.Create(domain.Customer{Email: "a@x.com"})
	require.NoError(t, err)

	first, err := customers.Update(created.ID, func(c *domain.Customer) { c.FullName = "one" })
	require.NoError(t, err)
	second, err := customers.Update(created.ID, func(c *domain.Customer) { c.FullName = "two" })
	require.NoError(t, err)

	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
	assert.False(t, first.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateMissingRecordReturnsNil(t *testing.T) {
	s, _ := newTestStore(t)
	customers := s.CustomersCollection()

	updated, err := customers.Update("nope", func(c *domain.Customer) { c.FullName = "x" })
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteReportsRemoval(t *testing.T) {
	s, _ := newTestStore(t)
	offers := s.OffersCollection()

	created, err := offers.Create(domain.Offer{Type: "intro", Title: "Intro"})
	require.NoError(t, err)

	removed, err := offers.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = offers.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	rows, err := offers.All()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindFiltersWithPredicate(t *testing.T) {
	s, _ := newTestStore(t)
	transactions := s.TransactionsCollection()

	for _, kind := range []domain.TransactionType{
		domain.TransactionCredit, domain.TransactionDebit, domain.TransactionCredit,
	} {
		_, err := transactions.Create(domain.Transaction{CustomerID: "c1", Type: kind})
		require.NoError(t, err)
	}

	credits, err := transactions.Find(func(tx *domain.Transaction) bool {
		return tx.Type == domain.TransactionCredit
	})
	require.NoError(t, err)
	assert.Len(t, credits, 2)
}

func TestFindReturnsFreshSequence(t *testing.T) {
	s, _ := newTestStore(t)
	customers := s.CustomersCollection()

	created, err := customers.Create(domain.Customer{Email: "a@x.com", FullName: "Stored"})
	require.NoError(t, err)

	rows, err := customers.All()
	require.NoError(t, err)
	rows[0].FullName = "Scribbled"

	stored, err := customers.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stored", stored.FullName)
}
