package domain

import (
	"fmt"
	"time"
)

// Timestamp layouts used throughout the aggregate. Dates are stored as plain
// strings so a persisted blob is stable across timezones and Go versions.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Entity ids follow the original dashboard's convention: a short prefix plus
// the creation time in milliseconds. Invoices are the exception and use a
// yearly running number instead.

func NewAppointmentID() string { return fmt.Sprintf("A%d", time.Now().UnixMilli()) }
func NewClientID() string      { return fmt.Sprintf("CL%d", time.Now().UnixMilli()) }
func NewPlanID() string        { return fmt.Sprintf("P%d", time.Now().UnixMilli()) }
func NewTransactionID() string { return fmt.Sprintf("TRX-%d", time.Now().UnixMilli()) }

// NextInvoiceID formats an invoice number like INV-2025-007 from the year and
// the number of invoices already issued.
func NextInvoiceID(year, issued int) string {
	return fmt.Sprintf("INV-%d-%03d", year, issued+1)
}
