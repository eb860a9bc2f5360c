package query_test

import (
	"testing"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/query"
	"dhanbad/wellness-admin/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPaid(t *testing.T) {
	data := seed.Data()

	// TRX-101 (5000) + TRX-102 (5800).
	assert.Equal(t, float64(10800), query.TotalPaid(data, "INV-2025-001"))
	assert.Equal(t, float64(0), query.TotalPaid(data, "INV-2025-002"))
	assert.Equal(t, float64(0), query.TotalPaid(data, "INV-9999"))
}

func TestBalanceDueFlooredAtZero(t *testing.T) {
	data := seed.Data()
	data.Transactions = append(data.Transactions, domain.Transaction{
		ID: "TRX-900", InvoiceID: "INV-2025-006", ClientID: "CL6",
		Amount: 500, Date: "2025-11-20", Method: domain.MethodCash,
	})

	inv, ok := data.FindInvoice("INV-2025-006")
	require.True(t, ok)
	// 3000 invoiced, 3500 paid: never negative.
	assert.Equal(t, float64(0), query.BalanceDue(data, inv))

	partial, _ := data.FindInvoice("INV-2025-004")
	assert.Equal(t, float64(7750), query.BalanceDue(data, partial))
}

func TestPaymentStatusIgnoresStoredField(t *testing.T) {
	data := seed.Data()

	// Stored status says overdue, but payments decide paid/pending here.
	inv, _ := data.FindInvoice("INV-2025-004")
	assert.Equal(t, domain.InvoiceOverdue, inv.Status)
	assert.Equal(t, domain.InvoicePending, query.PaymentStatus(data, inv))

	settled, _ := data.FindInvoice("INV-2025-003")
	assert.Equal(t, domain.InvoicePaid, query.PaymentStatus(data, settled))
}

func TestEffectiveStatus(t *testing.T) {
	data := seed.Data()
	inv, _ := data.FindInvoice("INV-2025-002") // due 2025-11-27, unpaid

	assert.Equal(t, domain.InvoicePending, query.EffectiveStatus(data, inv, "2025-11-25"))
	assert.Equal(t, domain.InvoicePending, query.EffectiveStatus(data, inv, "2025-11-27"))
	assert.Equal(t, domain.InvoiceOverdue, query.EffectiveStatus(data, inv, "2025-11-28"))

	// A settled invoice never reads as overdue, however late the clock.
	settled, _ := data.FindInvoice("INV-2025-001")
	assert.Equal(t, domain.InvoicePaid, query.EffectiveStatus(data, settled, "2026-06-01"))
}

func TestHasSchedulingConflict(t *testing.T) {
	data := seed.Data()

	// A1 books T1 at exactly this start.
	assert.True(t, query.HasSchedulingConflict(data, "T1", "2025-11-22T09:00:00"))
	// Same instant, different trainer: fine.
	assert.False(t, query.HasSchedulingConflict(data, "T2", "2025-11-22T09:00:00"))
	// Overlapping but unequal start is not treated as a conflict.
	assert.False(t, query.HasSchedulingConflict(data, "T1", "2025-11-22T09:15:00"))
}

func TestClientCoveragePercent(t *testing.T) {
	data := seed.Data()
	// 5 of 7 clients hold a plan.
	assert.Equal(t, 71, query.ClientCoveragePercent(data))

	assert.Equal(t, 0, query.ClientCoveragePercent(domain.AppData{}))
}

func TestRevenueByMonth(t *testing.T) {
	data := seed.Data()

	months := query.RevenueByMonth(data)
	require.Len(t, months, 1)
	assert.Equal(t, query.MonthRevenue{Month: "2025-11", Amount: 29300}, months[0])

	data.Transactions = append(data.Transactions, domain.Transaction{
		ID: "TRX-901", InvoiceID: "INV-2025-005", ClientID: "CL5",
		Amount: 1000, Date: "2025-12-03", Method: domain.MethodUPI,
	})
	months = query.RevenueByMonth(data)
	require.Len(t, months, 2)
	assert.Equal(t, "2025-11", months[0].Month)
	assert.Equal(t, "2025-12", months[1].Month)
	assert.Equal(t, float64(1000), months[1].Amount)
}

func TestRevenueByMethod(t *testing.T) {
	byMethod := query.RevenueByMethod(seed.Data())
	assert.Equal(t, float64(13000), byMethod[domain.MethodUPI])
	assert.Equal(t, float64(7800), byMethod[domain.MethodCash])
	assert.Equal(t, float64(8500), byMethod[domain.MethodCard])
}

func TestTotalRevenueAndOutstanding(t *testing.T) {
	data := seed.Data()
	assert.Equal(t, float64(29300), query.TotalRevenue(data))
	// INV-002 (1500) + INV-004 (12750-5000) + INV-005 (12800-2000).
	assert.Equal(t, float64(20050), query.OutstandingAmount(data))
}

func TestQueriesAreIdempotent(t *testing.T) {
	data := seed.Data()
	before := data.Clone()

	query.RevenueByMonth(data)
	query.SortedAppointments(data)
	query.OutstandingAmount(data)
	query.Stats(data, "2025-11-22")

	assert.Equal(t, before, data)
}

func TestSortedAppointments(t *testing.T) {
	data := seed.Data()
	// Perturb storage order.
	data.Appointments[0], data.Appointments[7] = data.Appointments[7], data.Appointments[0]

	sorted := query.SortedAppointments(data)
	require.Len(t, sorted, 8)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Start, sorted[i].Start)
	}
	// Input order untouched.
	assert.Equal(t, "A8", data.Appointments[0].ID)
}

func TestAppointmentsByTrainer(t *testing.T) {
	loads := query.AppointmentsByTrainer(seed.Data())
	require.Len(t, loads, 4)
	assert.Equal(t, query.TrainerLoad{TrainerID: "T1", Name: "Anita Sharma", Sessions: 3}, loads[0])
	assert.Equal(t, 2, loads[1].Sessions) // T2
	assert.Equal(t, 1, loads[2].Sessions) // T3
	assert.Equal(t, 2, loads[3].Sessions) // T4
}

func TestStats(t *testing.T) {
	st := query.Stats(seed.Data(), "2025-11-22")
	assert.Equal(t, query.DashboardStats{
		TotalClients:      7,
		ActivePlans:       5,
		AppointmentsToday: 2,
		ActiveCenters:     5,
	}, st)

	none := query.Stats(seed.Data(), "2025-12-25")
	assert.Equal(t, 0, none.AppointmentsToday)
}
