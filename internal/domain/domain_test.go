package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient() Client {
	return Client{
		ID:        "CL1",
		Name:      "Suresh Gupta",
		CenterID:  "C1",
		Age:       52,
		Phone:     "+91-9900000001",
		Metrics:   Metrics{WeightKg: 78, BP: "140/90", Sugar: 160},
		Trainers:  []string{"T1"},
		Plans:     []string{"P1"},
		Medicines: []Medicine{},
		Progress:  []ProgressLog{},
	}
}

func TestClientValidate(t *testing.T) {
	assert.NoError(t, validClient().Validate())

	c := validClient()
	c.ID = ""
	assert.ErrorIs(t, c.Validate(), ErrEmptyID)

	c = validClient()
	c.Age = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidAge)

	c = validClient()
	c.Plans = nil
	assert.ErrorIs(t, c.Validate(), ErrMissingCollections)
}

func TestPlanValidate(t *testing.T) {
	p := Plan{ID: "P1", Title: "Plan", Type: PlanYoga, StartDate: "2025-11-01", DurationWeeks: 8, Price: 1000}
	assert.NoError(t, p.Validate())

	p.Discount = 101
	assert.ErrorIs(t, p.Validate(), ErrInvalidDiscount)

	p.Discount = 10
	p.Type = "pilates"
	assert.ErrorIs(t, p.Validate(), ErrInvalidEnum)
}

func TestPlanEffectivePrice(t *testing.T) {
	p := Plan{Price: 1000, Discount: 10}
	assert.InDelta(t, 900, p.EffectivePrice(), 0.001)

	// Discount absent means full price.
	p = Plan{Price: 8500}
	assert.InDelta(t, 8500, p.EffectivePrice(), 0.001)
}

func TestInvoiceValidateTotalMatchesItems(t *testing.T) {
	inv := Invoice{
		ID:       "INV-2025-010",
		ClientID: "CL1",
		Date:     "2025-11-01",
		DueDate:  "2025-11-15",
		Items: []InvoiceItem{
			{Description: "Plan", Amount: 10800},
			{Description: "Supplements", Amount: 2000},
		},
		TotalAmount: 12800,
		Status:      InvoicePending,
	}
	assert.NoError(t, inv.Validate())

	inv.TotalAmount = 12000
	assert.ErrorIs(t, inv.Validate(), ErrTotalMismatch)

	inv.TotalAmount = 12800
	inv.Items = nil
	assert.ErrorIs(t, inv.Validate(), ErrNoItems)
}

func TestTransactionValidate(t *testing.T) {
	tx := Transaction{ID: "TRX-1", InvoiceID: "INV-1", ClientID: "CL1", Amount: 500, Date: "2025-11-02", Method: MethodUPI}
	assert.NoError(t, tx.Validate())

	tx.Amount = 0
	assert.ErrorIs(t, tx.Validate(), ErrInvalidAmount)

	tx.Amount = 500
	tx.Method = "cheque"
	assert.ErrorIs(t, tx.Validate(), ErrInvalidEnum)
}

func TestAppointmentValidate(t *testing.T) {
	a := Appointment{
		ID: "A1", CenterID: "C1", TrainerID: "T1", ClientID: "CL1",
		Start: "2025-11-22T09:00:00", End: "2025-11-22T09:30:00",
		Type: AppointmentFollowUp,
	}
	assert.NoError(t, a.Validate())

	a.Type = "Walk-in"
	assert.ErrorIs(t, a.Validate(), ErrInvalidEnum)
}

func TestCloneIsIndependent(t *testing.T) {
	orig := AppData{
		Clients: []Client{validClient()},
		Plans:   []Plan{{ID: "P1", Title: "Plan", Type: PlanYoga, DurationWeeks: 8, Price: 1000}},
	}
	orig.Normalize()

	clone := orig.Clone()
	clone.Clients[0].Plans[0] = "P9"
	clone.Clients[0].Metrics.WeightKg = 1
	clone.Plans[0].Title = "changed"

	assert.Equal(t, "P1", orig.Clients[0].Plans[0])
	assert.Equal(t, float64(78), orig.Clients[0].Metrics.WeightKg)
	assert.Equal(t, "Plan", orig.Plans[0].Title)
}

func TestNormalizeBackfillsCollections(t *testing.T) {
	// A blob persisted before invoicing existed lacks those keys entirely.
	var data AppData
	require.NoError(t, json.Unmarshal([]byte(`{"centers":[],"clients":[]}`), &data))
	data.Normalize()

	assert.NotNil(t, data.Invoices)
	assert.NotNil(t, data.Transactions)
	assert.Empty(t, data.Invoices)
	assert.Empty(t, data.Transactions)
}

func TestJSONFieldNames(t *testing.T) {
	blob, err := json.Marshal(validClient())
	require.NoError(t, err)
	for _, key := range []string{`"centerId"`, `"weightKg"`, `"bp"`, `"sugar"`, `"medicines"`, `"progress"`} {
		assert.Contains(t, string(blob), key)
	}
}

func TestNextInvoiceID(t *testing.T) {
	assert.Equal(t, "INV-2025-007", NextInvoiceID(2025, 6))
	assert.Equal(t, "INV-2026-001", NextInvoiceID(2026, 0))
}
