package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/kvstore"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

// Reserved storage slots for the current identity. At most one of the two is
// populated at a time; logging in as one role clears the other.
const (
	DefaultAdminSlot    = "bank_portal_current_admin"
	DefaultCustomerSlot = "bank_portal_current_customer"
)

// RoleCustomer is the token role claim for account holders; admin tokens
// carry their AdminRole value instead.
const RoleCustomer = "customer"

// Identity is what the reserved slots hold: a pointer to the record, never a
// copy of its persistent facts.
type Identity struct {
	Role  string `json:"role"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Config struct {
	Secret       string
	Issuer       string
	TTL          time.Duration
	AdminSlot    string
	CustomerSlot string
}

// Service selects the current user from the two reserved slots and delegates
// every persistent fact about that user to the document store.
type Service struct {
	store     *store.Store
	backend   kvstore.Backend
	admins    store.Collection[domain.Admin, *domain.Admin]
	customers store.Collection[domain.Customer, *domain.Customer]
	cfg       Config
	validate  *validator.Validate
	logger    *zap.Logger
}

func New(st *store.Store, backend kvstore.Backend, cfg Config, validate *validator.Validate, logger *zap.Logger) *Service {
	if cfg.AdminSlot == "" {
		cfg.AdminSlot = DefaultAdminSlot
	}
	if cfg.CustomerSlot == "" {
		cfg.CustomerSlot = DefaultCustomerSlot
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:     st,
		backend:   backend,
		admins:    st.AdminsCollection(),
		customers: st.CustomersCollection(),
		cfg:       cfg,
		validate:  validate,
		logger:    logger,
	}
}

// LoginAdmin matches the email case-insensitively and compares the stored
// password verbatim; the portal keeps simulated plaintext credentials.
func (s *Service) LoginAdmin(email, password string) (*domain.Admin, string, error) {
	admins, err := s.admins.Find(func(a *domain.Admin) bool {
		return strings.EqualFold(a.Email, email)
	})
	if err != nil {
		return nil, "", err
	}
	if len(admins) == 0 || admins[0].Password != password {
		return nil, "", domain.ErrInvalidCredentials
	}
	admin := admins[0]

	if err := s.occupySlot(s.cfg.AdminSlot, s.cfg.CustomerSlot, Identity{
		Role:  string(admin.Role),
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	}); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(admin.ID, string(admin.Role), admin.Email)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("admin logged in", zap.String("admin_id", admin.ID), zap.String("role", string(admin.Role)))
	return &admin, token, nil
}

// LoginCustomer accepts an account number or an email as the identifier.
func (s *Service) LoginCustomer(identifier, password string) (*domain.Customer, string, error) {
	customers, err := s.customers.Find(func(c *domain.Customer) bool {
		return c.AccountNumber == identifier || strings.EqualFold(c.Email, identifier)
	})
	if err != nil {
		return nil, "", err
	}
	if len(customers) == 0 || customers[0].Password != password {
		return nil, "", domain.ErrInvalidCredentials
	}
	customer := customers[0]

	if err := s.occupySlot(s.cfg.CustomerSlot, s.cfg.AdminSlot, Identity{
		Role:  RoleCustomer,
		ID:    customer.ID,
		Email: customer.Email,
		Name:  customer.FullName,
	}); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(customer.ID, RoleCustomer, customer.Email)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("customer logged in",
		zap.String("customer_id", customer.ID),
		zap.Bool("restricted", !customer.IsActive()))
	return &customer, token, nil
}

// CurrentAdmin resolves the admin slot against the store. An empty slot is
// (nil, nil); a slot pointing at a since-removed record is cleared.
func (s *Service) CurrentAdmin() (*domain.Admin, error) {
	identity, err := s.readSlot(s.cfg.AdminSlot)
	if err != nil || identity == nil {
		return nil, err
	}
	admin, err := s.admins.Get(identity.ID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, s.backend.RemoveItem(s.cfg.AdminSlot)
	}
	return admin, nil
}

// CurrentCustomer mirrors CurrentAdmin for the customer slot.
func (s *Service) CurrentCustomer() (*domain.Customer, error) {
	identity, err := s.readSlot(s.cfg.CustomerSlot)
	if err != nil || identity == nil {
		return nil, err
	}
	customer, err := s.customers.Get(identity.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, s.backend.RemoveItem(s.cfg.CustomerSlot)
	}
	return customer, nil
}

// Logout clears both reserved slots.
func (s *Service) Logout() error {
	if err := s.backend.RemoveItem(s.cfg.AdminSlot); err != nil {
		return err
	}
	return s.backend.RemoveItem(s.cfg.CustomerSlot)
}

type ProvisionAdminInput struct {
	Email    string           `validate:"required,email"`
	Password string           `validate:"required,min=4"`
	Role     domain.AdminRole `validate:"required"`
	Name     string           `validate:"required"`
}

// ProvisionAdmin creates a back-office account; the email must be unique
// case-insensitively.
func (s *Service) ProvisionAdmin(input ProvisionAdminInput) (*domain.Admin, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid admin payload", err)
	}
	if !input.Role.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown admin role")
	}

	var created domain.Admin
	err := s.store.Mutate(func(db *store.Database) error {
		for i := range db.Admins {
			if strings.EqualFold(db.Admins[i].Email, input.Email) {
				return domain.NewError(domain.ErrCodeConflict, "an admin with this email already exists")
			}
		}
		created = s.admins.CreateIn(db, domain.Admin{
			Email:    input.Email,
			Password: input.Password,
			Role:     input.Role,
			Name:     input.Name,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("admin provisioned", zap.String("admin_id", created.ID), zap.String("role", string(created.Role)))
	return &created, nil
}

// ResetAdminPassword and ChangeAdminRole are the only mutations admins see in
// normal flow.

func (s *Service) ResetAdminPassword(id, password string) (*domain.Admin, error) {
	if password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "password must not be empty")
	}
	updated, err := s.admins.Update(id, func(a *domain.Admin) {
		a.Password = password
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrAdminNotFound
	}
	return updated, nil
}

func (s *Service) ChangeAdminRole(id string, role domain.AdminRole) (*domain.Admin, error) {
	if !role.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown admin role")
	}
	updated, err := s.admins.Update(id, func(a *domain.Admin) {
		a.Role = role
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrAdminNotFound
	}
	return updated, nil
}

func (s *Service) Admins() ([]domain.Admin, error) {
	return s.admins.All()
}

// SeedAdmin provisions the first superadmin when the collection is empty.
// A populated collection makes this a no-op.
func (s *Service) SeedAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	admins, err := s.admins.All()
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil
	}
	_, err = s.ProvisionAdmin(ProvisionAdminInput{
		Email:    email,
		Password: password,
		Role:     domain.RoleSuperAdmin,
		Name:     "Portal Administrator",
	})
	return err
}

func (s *Service) occupySlot(slot, otherSlot string, identity Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.backend.SetItem(slot, string(raw)); err != nil {
		return err
	}
	return s.backend.RemoveItem(otherSlot)
}

func (s *Service) readSlot(slot string) (*Identity, error) {
	raw, ok, err := s.backend.GetItem(slot)
	if err != nil || !ok {
		return nil, err
	}
	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		s.logger.Warn("session slot is unreadable, clearing", zap.String("slot", slot), zap.Error(err))
		return nil, s.backend.RemoveItem(slot)
	}
	return &identity, nil
}

func (s *Service) issueToken(subject, role, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"role":  role,
		"email": email,
		"iss":   s.cfg.Issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.TTL).Unix(),
	})
	return token.SignedString([]byte(s.cfg.Secret))
}
