package vault

import (
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

// Default approval codes answered before an administrator has saved a real
// set, so validation always has something to compare against.
const (
	DefaultCOT = "746392"
	DefaultTax = "158203"
	DefaultIRS = "903471"
)

// Service maintains the singleton-like current approval codes used to gate
// high-value transfers.
type Service struct {
	store  *store.Store
	codes  store.Collection[domain.TransferCodes, *domain.TransferCodes]
	logger *zap.Logger
}

func New(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  st,
		codes:  st.TransferCodesCollection(),
		logger: logger,
	}
}

// Get returns the current codes record, or the unpersisted defaults on a
// pristine system. The default set carries an empty envelope id.
func (s *Service) Get() (*domain.TransferCodes, error) {
	rows, err := s.codes.All()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return defaultCodes(), nil
	}
	current := rows[0]
	return &current, nil
}

// Save updates the existing record in place, or creates the first one. The
// collection never holds two simultaneous records.
func (s *Service) Save(cot, tax, irs, updatedBy string) (*domain.TransferCodes, error) {
	if cot == "" || tax == "" || irs == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "all three approval codes are required")
	}

	var saved domain.TransferCodes
	err := s.store.Mutate(func(db *store.Database) error {
		if len(db.TransferCodes) > 0 {
			updated := s.codes.UpdateIn(db, db.TransferCodes[0].ID, func(tc *domain.TransferCodes) {
				tc.COT = cot
				tc.Tax = tax
				tc.IRS = irs
				tc.LastUpdatedBy = updatedBy
			})
			saved = *updated
			return nil
		}
		saved = s.codes.CreateIn(db, domain.TransferCodes{
			COT:           cot,
			Tax:           tax,
			IRS:           irs,
			LastUpdatedBy: updatedBy,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer codes saved", zap.String("updated_by", updatedBy))
	return &saved, nil
}

// Validate checks a user-submitted code against the current set with an exact
// string match. Unknown code types validate false.
func (s *Service) Validate(kind domain.CodeType, candidate string) (bool, error) {
	current, err := s.Get()
	if err != nil {
		return false, err
	}
	want, ok := current.Code(kind)
	if !ok || want == "" {
		return false, nil
	}
	return want == candidate, nil
}

func defaultCodes() *domain.TransferCodes {
	return &domain.TransferCodes{
		COT:           DefaultCOT,
		Tax:           DefaultTax,
		IRS:           DefaultIRS,
		LastUpdatedBy: "system",
	}
}
