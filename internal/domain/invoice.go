package domain

import "math"

// InvoiceStatus is the payment state of an invoice. "paid" and "pending" are
// derived from recorded transactions; "overdue" is a read-side judgement made
// from the due date and is never written by a store command.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePaid, InvoicePending, InvoiceOverdue:
		return true
	}
	return false
}

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice bills a client for one or more items. TotalAmount must equal the
// sum of the item amounts at creation time; it is not re-validated after.
type Invoice struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	Date        string        `json:"date"`
	DueDate     string        `json:"dueDate"`
	Items       []InvoiceItem `json:"items"`
	TotalAmount float64       `json:"totalAmount"`
	Status      InvoiceStatus `json:"status"`
}

func (i Invoice) Validate() error {
	if i.ID == "" {
		return ErrEmptyID
	}
	if i.ClientID == "" {
		return ErrEmptyReference
	}
	if i.Date == "" {
		return ErrEmptyDate
	}
	if len(i.Items) == 0 {
		return ErrNoItems
	}
	var sum float64
	for _, item := range i.Items {
		if item.Description == "" {
			return ErrEmptyName
		}
		if item.Amount < 0 {
			return ErrInvalidAmount
		}
		sum += item.Amount
	}
	// Amounts are display-precision rupee values, so allow for float noise.
	if math.Abs(sum-i.TotalAmount) > 0.005 {
		return ErrTotalMismatch
	}
	if !i.Status.Valid() {
		return ErrInvalidEnum
	}
	return nil
}
