package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/kvstore"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(kvstore.NewMemory(), "", zap.NewNop())
	return New(st, nil, zap.NewNop())
}

func seedCustomer(t *testing.T, s *Service, balance int64) *domain.Customer {
	t.Helper()
	customer, err := s.CreateCustomer(CreateCustomerInput{
		AccountNumber: "1002003001",
		FullName:      "Ada Example",
		Email:         "a@x.com",
		Password:      "hunter2",
		Balance:       balance,
	})
	require.NoError(t, err)
	return customer
}

func TestCreateCustomerRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	s := newTestService(t)
	seedCustomer(t, s, 0)

	_, err := s.CreateCustomer(CreateCustomerInput{
		AccountNumber: "1002003002",
		FullName:      "Imposter",
		Email:         "A@X.com",
		Password:      "hunter2",
	})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	customers, err := s.Customers()
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCreateCustomerRejectsDuplicateAccountNumber(t *testing.T) {
	s := newTestService(t)
	seedCustomer(t, s, 0)

	_, err := s.CreateCustomer(CreateCustomerInput{
		AccountNumber: "1002003001",
		FullName:      "Imposter",
		Email:         "b@x.com",
		Password:      "hunter2",
	})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestCreateTransactionDebitAdjustsBalance(t *testing.T) {
	s := newTestService(t)
	customer := seedCustomer(t, s, 1000)

	created, err := s.CreateTransaction(CreateTransactionInput{
		CustomerID:     customer.ID,
		Type:           domain.TransactionDebit,
		Amount:         200,
		ChargesApplied: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionDebit, created.Type)
	assert.NotEmpty(t, created.TransactionID)
	assert.Equal(t, "completed", created.Status)

	after, err := s.CustomerByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(775), after.Balance)

	entries, err := s.TransactionsForCustomer(customer.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateTransactionCreditAdjustsBalance(t *testing.T) {
	s := newTestService(t)
	customer := seedCustomer(t, s, 1000)

	_, err := s.CreateTransaction(CreateTransactionInput{
		CustomerID:     customer.ID,
		Type:           domain.TransactionCredit,
		Amount:         500,
		ChargesApplied: 50,
	})
	require.NoError(t, err)

	after, err := s.CustomerByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1450), after.Balance)
}

func TestBalanceSumsSignedEffects(t *testing.T) {
	s := newTestService(t)
	customer := seedCustomer(t, s, 10000)

	inputs := []CreateTransactionInput{
		{CustomerID: customer.ID, Type: domain.TransactionCredit, Amount: 1000, ChargesApplied: 100},
		{CustomerID: customer.ID, Type: domain.TransactionDebit, Amount: 300, ChargesApplied: 30},
		{CustomerID: customer.ID, Type: domain.TransactionTransfer, Amount: 400, ChargesApplied: 0},
		{CustomerID: customer.ID, Type: domain.TransactionCredit, Amount: 250, ChargesApplied: 0},
	}
	want := int64(10000)
	for _, input := range inputs {
		created, err := s.CreateTransaction(input)
		require.NoError(t, err)
		want += created.SignedEffect()
	}

	after, err := s.CustomerByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, want, after.Balance)
}

func TestCreateTransactionUnknownCustomer(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateTransaction(CreateTransactionInput{
		CustomerID: "missing",
		Type:       domain.TransactionCredit,
		Amount:     100,
	})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestAmendTransactionLeavesBalanceAlone(t *testing.T) {
	s := newTestService(t)
	customer := seedCustomer(t, s, 1000)

	created, err := s.CreateTransaction(CreateTransactionInput{
		CustomerID: customer.ID,
		Type:       domain.TransactionDebit,
		Amount:     200,
	})
	require.NoError(t, err)

	newDate := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	amended, err := s.AmendTransaction(created.ID, "TXN-CORRECTED01", newDate)
	require.NoError(t, err)
	assert.Equal(t, "TXN-CORRECTED01", amended.TransactionID)
	assert.Equal(t, newDate, amended.Date)

	after, err := s.CustomerByID(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(800), after.Balance)
}

func TestUpdateCustomerPasswordOnlyTouchesPassword(t *testing.T) {
	s := newTestService(t)
	customer := seedCustomer(t, s, 1234)

	updated, err := s.UpdateCustomerPassword(customer.ID, "n3w-secret")
	require.NoError(t, err)
	assert.Equal(t, "n3w-secret", updated.Password)
	assert.Equal(t, int64(1234), updated.Balance)
	assert.Equal(t, customer.Email, updated.Email)
}

func TestCustomerLookups(t *testing.T) {
	s := newTestService(t)
	customer := seedCustomer(t, s, 0)

	byAccount, err := s.CustomerByAccountNumber("1002003001")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byAccount.ID)

	byEmail, err := s.CustomerByEmail("A@X.COM")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byEmail.ID)

	_, err = s.CustomerByID("missing")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestSetCustomerStatus(t *testing.T) {
	s := newTestService(t)
	customer := seedCustomer(t, s, 0)

	updated, err := s.SetCustomerStatus(customer.ID, domain.CustomerRestricted)
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerRestricted, updated.Status)

	_, err = s.SetCustomerStatus(customer.ID, "frozen")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
