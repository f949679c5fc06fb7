package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/kvstore"
)

func newTestStore(t *testing.T) (*Store, *kvstore.MemoryBackend) {
	t.Helper()
	backend := kvstore.NewMemory()
	return New(backend, "", zap.NewNop()), backend
}

func TestLoadInitializesFreshDatabase(t *testing.T) {
	s, backend := newTestStore(t)

	db, err := s.Load()
	require.NoError(t, err)

	require.NotNil(t, db.Admins)
	require.NotNil(t, db.Customers)
	require.NotNil(t, db.Transactions)
	require.NotNil(t, db.Charges)
	require.NotNil(t, db.TransferCodes)
	require.NotNil(t, db.Offers)
	require.NotNil(t, db.Leads)
	assert.Empty(t, db.Customers)

	// The fresh database is persisted, not just returned.
	raw, ok, err := backend.GetItem(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"customers":[]`)
}

func TestLoadRecoversFromCorruptBlob(t *testing.T) {
	s, backend := newTestStore(t)
	require.NoError(t, backend.SetItem(DefaultKey, "{not json"))

	db, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, db.Customers)

	raw, ok, err := backend.GetItem(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"admins":[]`)
}

func TestLoadNormalizesMissingCollections(t *testing.T) {
	s, backend := newTestStore(t)
	require.NoError(t, backend.SetItem(DefaultKey, `{"customers":[]}`))

	db, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, db.Leads)
	require.NotNil(t, db.TransferCodes)
}

func TestMutateDoesNotPersistOnError(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CustomersCollection().Create(domain.Customer{Email: "a@x.com"})
	require.NoError(t, err)

	err = s.Mutate(func(db *Database) error {
		db.Customers = nil
		return domain.ErrInvalidPayload
	})
	require.Error(t, err)

	rows, err := s.CustomersCollection().All()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRoundTripThroughBackend(t *testing.T) {
	backend := kvstore.NewMemory()
	first := New(backend, "", zap.NewNop())

	created, err := first.CustomersCollection().Create(domain.Customer{
		AccountNumber: "1002003001",
		FullName:      "Ada Example",
		Email:         "ada@example.com",
		Balance:       100000,
		Status:        domain.CustomerActive,
	})
	require.NoError(t, err)

	_, err = first.LeadsCollection().Create(domain.Lead{
		Type:   "loan-inquiry",
		Data:   map[string]string{"phone": "555-0100"},
		Status: domain.LeadNew,
	})
	require.NoError(t, err)

	// A brand-new store over the same backend sees value-equal collections.
	second := New(backend, "", zap.NewNop())
	reloaded, err := second.Load()
	require.NoError(t, err)

	require.Len(t, reloaded.Customers, 1)
	assert.Equal(t, created, reloaded.Customers[0])
	require.Len(t, reloaded.Leads, 1)
	assert.Equal(t, "loan-inquiry", reloaded.Leads[0].Type)
}
