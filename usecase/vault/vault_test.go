package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/kvstore"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(kvstore.NewMemory(), "", zap.NewNop())
	return New(st, zap.NewNop()), st
}

func TestGetReturnsDefaultsOnPristineStore(t *testing.T) {
	s, st := newTestService(t)

	codes, err := s.Get()
	require.NoError(t, err)
	assert.True(t, codes.IsDefault())
	assert.Equal(t, DefaultCOT, codes.COT)
	assert.Equal(t, DefaultTax, codes.Tax)
	assert.Equal(t, DefaultIRS, codes.IRS)

	// Defaults are answered, never persisted.
	db, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, db.TransferCodes)
}

func TestValidateAgainstDefaultsBeforeAnySave(t *testing.T) {
	s, _ := newTestService(t)

	ok, err := s.Validate(domain.CodeCOT, DefaultCOT)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Validate(domain.CodeCOT, "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Validate("pin", DefaultCOT)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveCreatesThenUpdatesInPlace(t *testing.T) {
	s, st := newTestService(t)

	first, err := s.Save("111111", "222222", "333333", "ops@psi.test")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := s.Save("444444", "555555", "666666", "admin@psi.test")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "444444", second.COT)
	assert.Equal(t, "admin@psi.test", second.LastUpdatedBy)

	db, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, db.TransferCodes, 1)
}

func TestValidateAfterSaveUsesSavedCodes(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Save("111111", "222222", "333333", "ops@psi.test")
	require.NoError(t, err)

	ok, err := s.Validate(domain.CodeTax, "222222")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Validate(domain.CodeTax, DefaultTax)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveRequiresAllThreeCodes(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Save("111111", "", "333333", "ops@psi.test")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
