package domain

import "time"

// OfferStatus controls whether a campaign is shown to visitors.
type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferPaused   OfferStatus = "paused"
	OfferArchived OfferStatus = "archived"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferActive, OfferPaused, OfferArchived:
		return true
	}
	return false
}

// Offer is a marketing campaign placed on one or more portal pages.
type Offer struct {
	Envelope
	Type         string      `json:"type"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Value        string      `json:"value"`
	StartsAt     time.Time   `json:"startsAt"`
	EndsAt       *time.Time  `json:"endsAt,omitempty"`
	Eligibility  string      `json:"eligibility,omitempty"`
	CTALabel     string      `json:"ctaLabel"`
	CTATarget    string      `json:"ctaTarget"`
	Status       OfferStatus `json:"status"`
	PageChannels []string    `json:"pageChannels"`
	Banner       string      `json:"banner,omitempty"`
	Icon         string      `json:"icon,omitempty"`
}

// OnChannel reports whether the offer is tagged for the given destination page.
func (o *Offer) OnChannel(channel string) bool {
	for _, c := range o.PageChannels {
		if c == channel {
			return true
		}
	}
	return false
}
