package domain

// CodeType names one of the three approval codes gating high-value transfers.
type CodeType string

const (
	CodeCOT CodeType = "cot"
	CodeTax CodeType = "tax"
	CodeIRS CodeType = "irs"
)

func (c CodeType) Valid() bool {
	switch c {
	case CodeCOT, CodeTax, CodeIRS:
		return true
	}
	return false
}

// TransferCodes is the singleton-like "current approval codes" record. The
// collection holds at most one record; a pristine system answers with a
// well-known default set that is never persisted.
type TransferCodes struct {
	Envelope
	COT           string `json:"cot"`
	Tax           string `json:"tax"`
	IRS           string `json:"irs"`
	LastUpdatedBy string `json:"lastUpdatedBy"`
}

// Code returns the value for the named code type.
func (tc *TransferCodes) Code(kind CodeType) (string, bool) {
	switch kind {
	case CodeCOT:
		return tc.COT, true
	case CodeTax:
		return tc.Tax, true
	case CodeIRS:
		return tc.IRS, true
	}
	return "", false
}

// IsDefault reports whether this is the unpersisted default set.
func (tc *TransferCodes) IsDefault() bool {
	return tc != nil && tc.ID == ""
}
