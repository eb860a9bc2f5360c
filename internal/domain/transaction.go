package domain

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodUPI          PaymentMethod = "upi"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodBankTransfer:
		return true
	}
	return false
}

// Transaction records one payment against an invoice. The invoice reference
// may dangle (payments against a since-unknown invoice stay on the books).
type Transaction struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoiceId"`
	ClientID  string        `json:"clientId"`
	Amount    float64       `json:"amount"`
	Date      string        `json:"date"`
	Method    PaymentMethod `json:"method"`
	Note      string        `json:"note,omitempty"`
}

func (t Transaction) Validate() error {
	if t.ID == "" {
		return ErrEmptyID
	}
	if t.InvoiceID == "" || t.ClientID == "" {
		return ErrEmptyReference
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if t.Date == "" {
		return ErrEmptyDate
	}
	if !t.Method.Valid() {
		return ErrInvalidEnum
	}
	return nil
}
