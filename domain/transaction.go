package domain

import "time"

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionCredit   TransactionType = "credit"
	TransactionDebit    TransactionType = "debit"
	TransactionTransfer TransactionType = "transfer"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionCredit, TransactionDebit, TransactionTransfer:
		return true
	}
	return false
}

// Transaction is a single ledger entry against one customer. TransactionID is
// the human-facing reference, distinct from the envelope ID, and is generated
// when the caller does not supply one. Amount and ChargesApplied are
// non-negative magnitudes in minor currency units.
type Transaction struct {
	Envelope
	TransactionID  string          `json:"transactionId"`
	CustomerID     string          `json:"customerId"`
	Type           TransactionType `json:"type"`
	Amount         int64           `json:"amount"`
	ChargesApplied int64           `json:"chargesApplied"`
	Description    string          `json:"description,omitempty"`
	Status         string          `json:"status"`
	Date           time.Time       `json:"date"`
	SenderName     string          `json:"senderName,omitempty"`
	SenderBank     string          `json:"senderBank,omitempty"`
	SenderAccount  string          `json:"senderAccount,omitempty"`
}

// SignedEffect is the balance delta this entry applies to its customer:
// credits add amount less charges, debits and transfers remove amount plus
// charges.
func (t *Transaction) SignedEffect() int64 {
	if t.Type == TransactionCredit {
		return t.Amount - t.ChargesApplied
	}
	return -(t.Amount + t.ChargesApplied)
}
