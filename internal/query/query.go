// Package query contains the pure derivations computed over an aggregate
// snapshot: payment totals, schedule conflicts, coverage and revenue
// groupings. Nothing here mutates the snapshot or touches storage.
package query

import (
	"math"
	"sort"

	"dhanbad/wellness-admin/internal/domain"
)

// TotalPaid sums all payments recorded against the invoice.
func TotalPaid(data domain.AppData, invoiceID string) float64 {
	var sum float64
	for _, t := range data.Transactions {
		if t.InvoiceID == invoiceID {
			sum += t.Amount
		}
	}
	return sum
}

// BalanceDue is the invoice total minus payments, floored at zero for
// display (overpayment never shows as a negative balance).
func BalanceDue(data domain.AppData, inv domain.Invoice) float64 {
	due := inv.TotalAmount - TotalPaid(data, inv.ID)
	if due < 0 {
		return 0
	}
	return due
}

// PaymentStatus derives paid/pending purely from the recorded payments,
// ignoring the stored status field.
func PaymentStatus(data domain.AppData, inv domain.Invoice) domain.InvoiceStatus {
	if TotalPaid(data, inv.ID) >= inv.TotalAmount {
		return domain.InvoicePaid
	}
	return domain.InvoicePending
}

// EffectiveStatus is the read-side status including overdue: an unpaid
// invoice whose due date lies strictly before today. today uses the
// "2006-01-02" layout; dates compare lexicographically.
func EffectiveStatus(data domain.AppData, inv domain.Invoice, today string) domain.InvoiceStatus {
	status := PaymentStatus(data, inv)
	if status != domain.InvoicePaid && inv.DueDate != "" && inv.DueDate < today {
		return domain.InvoiceOverdue
	}
	return status
}

// HasSchedulingConflict reports whether the trainer already has a booking at
// exactly this start time. Overlapping-but-unequal ranges are not detected;
// that matches the behaviour the dashboard has always had.
func HasSchedulingConflict(data domain.AppData, trainerID, start string) bool {
	for _, a := range data.Appointments {
		if a.TrainerID == trainerID && a.Start == start {
			return true
		}
	}
	return false
}

// ClientCoveragePercent is the rounded share of clients holding at least one
// plan. Zero clients means zero percent, not a division error.
func ClientCoveragePercent(data domain.AppData) int {
	if len(data.Clients) == 0 {
		return 0
	}
	covered := 0
	for _, c := range data.Clients {
		if len(c.Plans) > 0 {
			covered++
		}
	}
	return int(math.Round(float64(covered) / float64(len(data.Clients)) * 100))
}

// MonthRevenue is payment volume for one YYYY-MM bucket.
type MonthRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// RevenueByMonth groups payments by the YYYY-MM prefix of their date,
// ascending by month.
func RevenueByMonth(data domain.AppData) []MonthRevenue {
	buckets := make(map[string]float64)
	for _, t := range data.Transactions {
		if len(t.Date) < 7 {
			continue
		}
		buckets[t.Date[:7]] += t.Amount
	}
	out := make([]MonthRevenue, 0, len(buckets))
	for month, amount := range buckets {
		out = append(out, MonthRevenue{Month: month, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// RevenueByMethod groups payments by payment method.
func RevenueByMethod(data domain.AppData) map[domain.PaymentMethod]float64 {
	out := make(map[domain.PaymentMethod]float64)
	for _, t := range data.Transactions {
		out[t.Method] += t.Amount
	}
	return out
}

// TotalRevenue sums every recorded payment.
func TotalRevenue(data domain.AppData) float64 {
	var sum float64
	for _, t := range data.Transactions {
		sum += t.Amount
	}
	return sum
}

// OutstandingAmount sums the balance due across invoices not yet paid off.
func OutstandingAmount(data domain.AppData) float64 {
	var sum float64
	for _, inv := range data.Invoices {
		if PaymentStatus(data, inv) != domain.InvoicePaid {
			sum += BalanceDue(data, inv)
		}
	}
	return sum
}

// SortedAppointments returns the appointments ordered by start time
// ascending, the order every schedule view wants. Storage order is insert
// order and stays untouched.
func SortedAppointments(data domain.AppData) []domain.Appointment {
	out := append([]domain.Appointment{}, data.Appointments...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// TrainerLoad is a trainer's booking count, for the workload chart.
type TrainerLoad struct {
	TrainerID string `json:"trainerId"`
	Name      string `json:"name"`
	Sessions  int    `json:"sessions"`
}

// AppointmentsByTrainer counts bookings per trainer, in trainer collection
// order.
func AppointmentsByTrainer(data domain.AppData) []TrainerLoad {
	out := make([]TrainerLoad, 0, len(data.Trainers))
	for _, tr := range data.Trainers {
		n := 0
		for _, a := range data.Appointments {
			if a.TrainerID == tr.ID {
				n++
			}
		}
		out = append(out, TrainerLoad{TrainerID: tr.ID, Name: tr.Name, Sessions: n})
	}
	return out
}

// DashboardStats are the headline numbers on the overview screen.
type DashboardStats struct {
	TotalClients      int `json:"totalClients"`
	ActivePlans       int `json:"activePlans"`
	AppointmentsToday int `json:"appointmentsToday"`
	ActiveCenters     int `json:"activeCenters"`
}

// Stats computes the dashboard headline numbers. ActivePlans counts plan
// assignments across clients, not distinct plans; today uses the
// "2006-01-02" layout and matches by date prefix of the start timestamp.
func Stats(data domain.AppData, today string) DashboardStats {
	st := DashboardStats{
		TotalClients:  len(data.Clients),
		ActiveCenters: len(data.Centers),
	}
	for _, c := range data.Clients {
		st.ActivePlans += len(c.Plans)
	}
	for _, a := range data.Appointments {
		if len(a.Start) >= len(today) && a.Start[:len(today)] == today {
			st.AppointmentsToday++
		}
	}
	return st
}
