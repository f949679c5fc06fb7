package domain

// LeadStatus tracks a captured prospect through the contact flow.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadApproved  LeadStatus = "approved"
	LeadRejected  LeadStatus = "rejected"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadApproved, LeadRejected:
		return true
	}
	return false
}

// CanTransitionTo enforces new → contacted → approved/rejected. There is no
// way back to new and no skipping contacted.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	switch s {
	case LeadNew:
		return next == LeadContacted
	case LeadContacted:
		return next == LeadApproved || next == LeadRejected
	}
	return false
}

// LeadMetadata records where a submission came from.
type LeadMetadata struct {
	SourcePage string `json:"sourcePage,omitempty"`
	Client     string `json:"client,omitempty"`
}

// Lead is a captured prospect interest. Data holds the submitted form fields
// as a flat string-to-string mapping; every submission is retained, repeats
// included.
type Lead struct {
	Envelope
	OfferID  string            `json:"offerId,omitempty"`
	Type     string            `json:"type"`
	Data     map[string]string `json:"data"`
	Status   LeadStatus        `json:"status"`
	Metadata LeadMetadata      `json:"metadata"`
}
