package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/kvstore"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*Service, *kvstore.MemoryBackend, *store.Store) {
	t.Helper()
	backend := kvstore.NewMemory()
	st := store.New(backend, "", zap.NewNop())
	svc := New(st, backend, Config{
		Secret: testSecret,
		Issuer: "psi-federal-test",
		TTL:    time.Minute,
	}, nil, zap.NewNop())
	return svc, backend, st
}

func seedAdmin(t *testing.T, svc *Service) *domain.Admin {
	t.Helper()
	admin, err := svc.ProvisionAdmin(ProvisionAdminInput{
		Email:    "ops@psi.test",
		Password: "letmein",
		Role:     domain.RoleOperations,
		Name:     "Opal Operator",
	})
	require.NoError(t, err)
	return admin
}

func seedCustomer(t *testing.T, st *store.Store) domain.Customer {
	t.Helper()
	customer, err := st.CustomersCollection().Create(domain.Customer{
		AccountNumber: "1002003001",
		FullName:      "Ada Example",
		Email:         "ada@example.com",
		Password:      "hunter2",
		Status:        domain.CustomerActive,
	})
	require.NoError(t, err)
	return customer
}

func TestLoginAdminMatchesEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestService(t)
	admin := seedAdmin(t, svc)

	loggedIn, token, err := svc.LoginAdmin("OPS@PSI.TEST", "letmein")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, loggedIn.ID)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, admin.ID, claims["sub"])
	assert.Equal(t, string(domain.RoleOperations), claims["role"])
}

func TestLoginAdminWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	seedAdmin(t, svc)

	_, _, err := svc.LoginAdmin("ops@psi.test", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginClearsTheOtherSlot(t *testing.T) {
	svc, backend, st := newTestService(t)
	seedAdmin(t, svc)
	customer := seedCustomer(t, st)

	_, _, err := svc.LoginAdmin("ops@psi.test", "letmein")
	require.NoError(t, err)

	current, err := svc.CurrentAdmin()
	require.NoError(t, err)
	require.NotNil(t, current)

	// Customer login evicts the admin identity.
	_, _, err = svc.LoginCustomer(customer.AccountNumber, "hunter2")
	require.NoError(t, err)

	current, err = svc.CurrentAdmin()
	require.NoError(t, err)
	assert.Nil(t, current)

	currentCustomer, err := svc.CurrentCustomer()
	require.NoError(t, err)
	require.NotNil(t, currentCustomer)
	assert.Equal(t, customer.ID, currentCustomer.ID)

	_, ok, err := backend.GetItem(DefaultAdminSlot)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginCustomerByEmail(t *testing.T) {
	svc, _, st := newTestService(t)
	customer := seedCustomer(t, st)

	loggedIn, token, err := svc.LoginCustomer("ADA@example.COM", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, customer.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestLogoutClearsBothSlots(t *testing.T) {
	svc, _, st := newTestService(t)
	customer := seedCustomer(t, st)

	_, _, err := svc.LoginCustomer(customer.Email, "hunter2")
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	current, err := svc.CurrentCustomer()
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestProvisionAdminRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	seedAdmin(t, svc)

	_, err := svc.ProvisionAdmin(ProvisionAdminInput{
		Email:    "OPS@psi.test",
		Password: "other",
		Role:     domain.RoleSupport,
		Name:     "Dupe",
	})
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestSeedAdminOnlyOnEmptyCollection(t *testing.T) {
	svc, _, _ := newTestService(t)

	require.NoError(t, svc.SeedAdmin("root@psi.test", "bootstrap"))
	admins, err := svc.Admins()
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, domain.RoleSuperAdmin, admins[0].Role)

	// A second seed run changes nothing.
	require.NoError(t, svc.SeedAdmin("other@psi.test", "bootstrap"))
	admins, err = svc.Admins()
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestAdminRoleAndPasswordMutations(t *testing.T) {
	svc, _, _ := newTestService(t)
	admin := seedAdmin(t, svc)

	updated, err := svc.ChangeAdminRole(admin.ID, domain.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, updated.Role)

	updated, err = svc.ResetAdminPassword(admin.ID, "rotated")
	require.NoError(t, err)
	assert.Equal(t, "rotated", updated.Password)

	_, err = svc.ChangeAdminRole(admin.ID, "janitor")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
