package marketing

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hmdvk2-glitch/psi-federal-sub000/domain"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
)

// Service manages campaign content and prospect capture: offers with a
// first-run default set, and leads with an enforced contact flow.
type Service struct {
	store    *store.Store
	offers   store.Collection[domain.Offer, *domain.Offer]
	leads    store.Collection[domain.Lead, *domain.Lead]
	validate *validator.Validate
	logger   *zap.Logger
}

func New(st *store.Store, validate *validator.Validate, logger *zap.Logger) *Service {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    st,
		offers:   st.OffersCollection(),
		leads:    st.LeadsCollection(),
		validate: validate,
		logger:   logger,
	}
}

// Offers seeds the default campaign set on first read, then returns offers
// tagged for the given channel, or all of them when channel is empty.
func (s *Service) Offers(channel string) ([]domain.Offer, error) {
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}
	if channel == "" {
		return s.offers.All()
	}
	return s.offers.Find(func(o *domain.Offer) bool {
		return o.OnChannel(channel)
	})
}

func (s *Service) OfferByID(id string) (*domain.Offer, error) {
	offer, err := s.offers.Get(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}

type OfferInput struct {
	Type         string `validate:"required"`
	Title        string `validate:"required"`
	Description  string
	Value        string
	StartsAt     time.Time
	EndsAt       *time.Time
	Eligibility  string
	CTALabel     string
	CTATarget    string
	Status       domain.OfferStatus
	PageChannels []string
	Banner       string
	Icon         string
}

func (s *Service) CreateOffer(input OfferInput) (*domain.Offer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid offer payload", err)
	}
	offer := offerFromInput(input)
	if offer.Status == "" {
		offer.Status = domain.OfferActive
	}
	if !offer.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown offer status")
	}

	created, err := s.offers.Create(offer)
	if err != nil {
		return nil, err
	}
	s.logger.Info("offer created", zap.String("offer_id", created.ID), zap.String("type", created.Type))
	return &created, nil
}

func (s *Service) UpdateOffer(id string, input OfferInput) (*domain.Offer, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid offer payload", err)
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown offer status")
	}

	updated, err := s.offers.Update(id, func(o *domain.Offer) {
		next := offerFromInput(input)
		if next.Status == "" {
			next.Status = o.Status
		}
		*o = next
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrOfferNotFound
	}
	return updated, nil
}

func (s *Service) DeleteOffer(id string) error {
	removed, err := s.offers.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrOfferNotFound
	}
	return nil
}

type SubmitLeadInput struct {
	OfferID  string
	Type     string `validate:"required"`
	Data     map[string]string
	Metadata domain.LeadMetadata
}

// SubmitLead always creates a record; repeat submissions from the same source
// are retained.
func (s *Service) SubmitLead(input SubmitLeadInput) (*domain.Lead, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid lead payload", err)
	}

	data := input.Data
	if data == nil {
		data = map[string]string{}
	}
	created, err := s.leads.Create(domain.Lead{
		OfferID:  input.OfferID,
		Type:     input.Type,
		Data:     data,
		Status:   domain.LeadNew,
		Metadata: input.Metadata,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("lead captured",
		zap.String("lead_id", created.ID),
		zap.String("type", created.Type),
		zap.String("source_page", created.Metadata.SourcePage))
	return &created, nil
}

func (s *Service) Leads() ([]domain.Lead, error) {
	return s.leads.All()
}

// UpdateLeadStatus advances a lead through new → contacted → approved or
// rejected. Any other move is a conflict.
func (s *Service) UpdateLeadStatus(id string, next domain.LeadStatus) (*domain.Lead, error) {
	if !next.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown lead status")
	}

	var updated *domain.Lead
	err := s.store.Mutate(func(db *store.Database) error {
		current := s.leads.GetIn(db, id)
		if current == nil {
			return domain.ErrLeadNotFound
		}
		if !current.Status.CanTransitionTo(next) {
			return domain.NewError(domain.ErrCodeConflict, "lead cannot move from "+string(current.Status)+" to "+string(next))
		}
		updated = s.leads.UpdateIn(db, id, func(l *domain.Lead) {
			l.Status = next
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ensureSeeded bootstraps the default offers, keyed by offer type so a rerun
// never duplicates.
func (s *Service) ensureSeeded() error {
	return s.store.Mutate(func(db *store.Database) error {
		existing := make(map[string]bool, len(db.Offers))
		for i := range db.Offers {
			existing[db.Offers[i].Type] = true
		}
		for _, offer := range defaultOffers() {
			if !existing[offer.Type] {
				s.offers.CreateIn(db, offer)
			}
		}
		return nil
	})
}

func offerFromInput(input OfferInput) domain.Offer {
	return domain.Offer{
		Type:         input.Type,
		Title:        input.Title,
		Description:  input.Description,
		Value:        input.Value,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		Eligibility:  input.Eligibility,
		CTALabel:     input.CTALabel,
		CTATarget:    input.CTATarget,
		Status:       input.Status,
		PageChannels: input.PageChannels,
		Banner:       input.Banner,
		Icon:         input.Icon,
	}
}

func defaultOffers() []domain.Offer {
	now := time.Now().UTC()
	return []domain.Offer{
		{
			Type:         "high-yield-savings",
			Title:        "High-Yield Savings",
			Description:  "Earn a promotional rate on new savings balances for the first six months.",
			Value:        "4.25% APY",
			StartsAt:     now,
			Eligibility:  "New savings accounts only",
			CTALabel:     "Open an account",
			CTATarget:    "/accounts/savings",
			Status:       domain.OfferActive,
			PageChannels: []string{"home", "dashboard"},
		},
		{
			Type:         "auto-loan-promo",
			Title:        "Auto Loan Special",
			Description:  "Reduced rates on new and used vehicle loans through the end of the quarter.",
			Value:        "from 5.9% APR",
			StartsAt:     now,
			Eligibility:  "Members in good standing",
			CTALabel:     "Apply now",
			CTATarget:    "/loans/auto",
			Status:       domain.OfferActive,
			PageChannels: []string{"home", "offers"},
		},
		{
			Type:         "rewards-card-intro",
			Title:        "Rewards Card Intro Offer",
			Description:  "Bonus points after your first qualifying purchases with the rewards card.",
			Value:        "20,000 points",
			StartsAt:     now,
			Eligibility:  "Subject to credit approval",
			CTALabel:     "Learn more",
			CTATarget:    "/cards/rewards",
			Status:       domain.OfferActive,
			PageChannels: []string{"dashboard", "offers"},
		},
	}
}
