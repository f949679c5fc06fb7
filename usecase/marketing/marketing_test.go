package marketing

import (
	"testing"

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

func TestOffersBootstrapIsIdempotent(t *testing.T) {
	s := newTestService(t)

	first, err := s.Offers("")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := s.Offers("")
	require.NoError(t, err)
	assert.Len(t, second, len(first))

	// Exactly one record per default type.
	seen := map[string]int{}
	for _, offer := range second {
		seen[offer.Type]++
	}
	for offerType, count := range seen {
		assert.Equal(t, 1, count, "offer type %s duplicated", offerType)
	}
}

func TestOffersFiltersByChannel(t *testing.T) {
	s := newTestService(t)

	all, err := s.Offers("")
	require.NoError(t, err)

	home, err := s.Offers("home")
	require.NoError(t, err)
	require.NotEmpty(t, home)
	assert.Less(t, len(home), len(all))
	for _, offer := range home {
		assert.Contains(t, offer.PageChannels, "home")
	}
}

func TestCreateUpdateDeleteOffer(t *testing.T) {
	s := newTestService(t)

	created, err := s.CreateOffer(OfferInput{
		Type:         "cd-ladder",
		Title:        "CD Ladder Special",
		Value:        "5.0% APY",
		CTALabel:     "Open a CD",
		CTATarget:    "/accounts/cd",
		PageChannels: []string{"offers"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OfferActive, created.Status)

	updated, err := s.UpdateOffer(created.ID, OfferInput{
		Type:         "cd-ladder",
		Title:        "CD Ladder Final Week",
		Value:        "5.0% APY",
		Status:       domain.OfferPaused,
		PageChannels: []string{"offers", "home"},
	})
	require.NoError(t, err)
	assert.Equal(t, "CD Ladder Final Week", updated.Title)
	assert.Equal(t, domain.OfferPaused, updated.Status)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, s.DeleteOffer(created.ID))
	err = s.DeleteOffer(created.ID)
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestSubmitLeadRetainsRepeats(t *testing.T) {
	s := newTestService(t)

	input := SubmitLeadInput{
		Type: "mortgage-inquiry",
		Data: map[string]string{"phone": "555-0100", "name": "Ada"},
		Metadata: domain.LeadMetadata{
			SourcePage: "/loans/mortgage",
			Client:     "portal-web",
		},
	}
	first, err := s.SubmitLead(input)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadNew, first.Status)

	second, err := s.SubmitLead(input)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	leads, err := s.Leads()
	require.NoError(t, err)
	assert.Len(t, leads, 2)
}

func TestLeadStatusMachine(t *testing.T) {
	s := newTestService(t)

	lead, err := s.SubmitLead(SubmitLeadInput{Type: "card-inquiry"})
	require.NoError(t, err)

	// new → approved skips contacted and must be rejected.
	_, err = s.UpdateLeadStatus(lead.ID, domain.LeadApproved)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	contacted, err := s.UpdateLeadStatus(lead.ID, domain.LeadContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadContacted, contacted.Status)

	approved, err := s.UpdateLeadStatus(lead.ID, domain.LeadApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadApproved, approved.Status)

	// Terminal states stay terminal.
	_, err = s.UpdateLeadStatus(lead.ID, domain.LeadContacted)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestUpdateLeadStatusUnknownLead(t *testing.T) {
	s := newTestService(t)

	_, err := s.UpdateLeadStatus("missing", domain.LeadContacted)
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}
