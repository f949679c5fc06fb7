package ledger

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

// Service layers the customer/transaction invariants over the generic
// collections: unique identities at creation, and balance mutation tied to
// transaction insertion.
type Service struct {
	store        *store.Store
	customers    store.Collection[domain.Customer, *domain.Customer]
	transactions store.Collection[domain.Transaction, *domain.Transaction]
	validate     *validator.Validate
	logger       *zap.Logger
}

func New(st *store.Store, validate *validator.Validate, logger *zap.Logger) *Service {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:        st,
		customers:    st.CustomersCollection(),
		transactions: st.TransactionsCollection(),
		validate:     validate,
		logger:       logger,
	}
}

type CreateCustomerInput struct {
	AccountNumber string `validate:"required"`
	FullName      string `validate:"required"`
	Email         string `validate:"required,email"`
	Password      string `validate:"required,min=4"`
	Balance       int64  `validate:"gte=0"`
	Photo         string
}

// CreateCustomer rejects any payload whose email (case-insensitive) or
// account number collides with an existing customer. The check and the insert
// run inside one store mutation, so no interleaved write can slip between
// them.
func (s *Service) CreateCustomer(input CreateCustomerInput) (*domain.Customer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid customer payload", err)
	}

	var created domain.Customer
	err := s.store.Mutate(func(db *store.Database) error {
		for i := range db.Customers {
			existing := &db.Customers[i]
			if strings.EqualFold(existing.Email, input.Email) {
				return domain.NewError(domain.ErrCodeConflict, "a customer with this email already exists")
			}
			if existing.AccountNumber == input.AccountNumber {
				return domain.NewError(domain.ErrCodeConflict, "a customer with this account number already exists")
			}
		}
		created = s.customers.CreateIn(db, domain.Customer{
			AccountNumber: input.AccountNumber,
			FullName:      input.FullName,
			Email:         input.Email,
			Password:      input.Password,
			Balance:       input.Balance,
			Status:        domain.CustomerActive,
			Photo:         input.Photo,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		zap.String("customer_id", created.ID),
		zap.String("account_number", created.AccountNumber))
	return &created, nil
}

type CreateTransactionInput struct {
	CustomerID     string                 `validate:"required"`
	Type           domain.TransactionType `validate:"required"`
	Amount         int64                  `validate:"gte=0"`
	ChargesApplied int64                  `validate:"gte=0"`
	Description    string
	Status         string
	Date           time.Time
	TransactionID  string
	SenderName     string
	SenderBank     string
	SenderAccount  string
}

// CreateTransaction appends the ledger entry and applies its signed effect to
// the customer balance in a single store write, so the pair either lands
// together or not at all. A customer id that does not resolve is an invalid
// reference, not a silent no-op.
func (s *Service) CreateTransaction(input CreateTransactionInput) (*domain.Transaction, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid transaction payload", err)
	}
	if !input.Type.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown transaction type")
	}

	var created domain.Transaction
	err := s.store.Mutate(func(db *store.Database) error {
		if s.customers.GetIn(db, input.CustomerID) == nil {
			return domain.NewError(domain.ErrCodeInvalid, "transaction references an unknown customer")
		}

		tx := domain.Transaction{
			TransactionID:  input.TransactionID,
			CustomerID:     input.CustomerID,
			Type:           input.Type,
			Amount:         input.Amount,
			ChargesApplied: input.ChargesApplied,
			Description:    input.Description,
			Status:         input.Status,
			Date:           input.Date,
			SenderName:     input.SenderName,
			SenderBank:     input.SenderBank,
			SenderAccount:  input.SenderAccount,
		}
		if tx.TransactionID == "" {
			tx.TransactionID = NewReference()
		}
		if tx.Status == "" {
			tx.Status = "completed"
		}
		if tx.Date.IsZero() {
			tx.Date = time.Now().UTC()
		}

		created = s.transactions.CreateIn(db, tx)
		s.customers.UpdateIn(db, input.CustomerID, func(c *domain.Customer) {
			c.Balance += created.SignedEffect()
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transaction recorded",
		zap.String("transaction_id", created.TransactionID),
		zap.String("customer_id", created.CustomerID),
		zap.String("type", string(created.Type)),
		zap.Int64("amount", created.Amount))
	return &created, nil
}

// AmendTransaction corrects clerical metadata on an existing entry: the
// human-facing reference and the value date. It never re-runs the balance
// arithmetic.
func (s *Service) AmendTransaction(id, reference string, date time.Time) (*domain.Transaction, error) {
	updated, err := s.transactions.Update(id, func(tx *domain.Transaction) {
		if reference != "" {
			tx.TransactionID = reference
		}
		if !date.IsZero() {
			tx.Date = date
		}
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return updated, nil
}

type UpdateCustomerInput struct {
	FullName *string
	Email    *string `validate:"omitempty,email"`
	Photo    *string
}

func (s *Service) UpdateCustomer(id string, input UpdateCustomerInput) (*domain.Customer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid customer payload", err)
	}

	updated, err := s.customers.Update(id, func(c *domain.Customer) {
		if input.FullName != nil {
			c.FullName = *input.FullName
		}
		if input.Email != nil {
			c.Email = *input.Email
		}
		if input.Photo != nil {
			c.Photo = *input.Photo
		}
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return updated, nil
}

// UpdateCustomerPassword changes the login credential and nothing else.
func (s *Service) UpdateCustomerPassword(id, password string) (*domain.Customer, error) {
	if password == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "password must not be empty")
	}
	updated, err := s.customers.Update(id, func(c *domain.Customer) {
		c.Password = password
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return updated, nil
}

func (s *Service) SetCustomerStatus(id string, status domain.CustomerStatus) (*domain.Customer, error) {
	if !status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown customer status")
	}
	updated, err := s.customers.Update(id, func(c *domain.Customer) {
		c.Status = status
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return updated, nil
}

func (s *Service) Customers() ([]domain.Customer, error) {
	return s.customers.All()
}

func (s *Service) CustomerByID(id string) (*domain.Customer, error) {
	customer, err := s.customers.Get(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (s *Service) CustomerByAccountNumber(accountNumber string) (*domain.Customer, error) {
	return s.firstCustomer(func(c *domain.Customer) bool {
		return c.AccountNumber == accountNumber
	})
}

func (s *Service) CustomerByEmail(email string) (*domain.Customer, error) {
	return s.firstCustomer(func(c *domain.Customer) bool {
		return strings.EqualFold(c.Email, email)
	})
}

// TransactionsForCustomer lists a customer's entries in creation order.
func (s *Service) TransactionsForCustomer(customerID string) ([]domain.Transaction, error) {
	return s.transactions.Find(func(tx *domain.Transaction) bool {
		return tx.CustomerID == customerID
	})
}

func (s *Service) firstCustomer(pred func(*domain.Customer) bool) (*domain.Customer, error) {
	rows, err := s.customers.Find(pred)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrCustomerNotFound
	}
	return &rows[0], nil
}

// NewReference mints a human-facing transaction reference.
func NewReference() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TXN-" + raw[:12]
}
