package service

import (
	"context"
	"fmt"
	"time"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/printing"
	"dhanbad/wellness-admin/internal/query"
	"dhanbad/wellness-admin/internal/store"
)

// InvoiceSummary is an invoice with its payment state derived for display.
// Status here is the effective read-side status: overdue shows for unpaid
// invoices past their due date even though the store never writes "overdue".
type InvoiceSummary struct {
	domain.Invoice
	ClientName string  `json:"clientName"`
	Paid       float64 `json:"paid"`
	Balance    float64 `json:"balance"`
}

// InvoiceItemInput is one line of the invoice form.
type InvoiceItemInput struct {
	Description string
	Amount      float64
}

// CreateInvoiceInput is the invoice form. TotalAmount is always recomputed
// from the items here; callers cannot supply a mismatched total.
type CreateInvoiceInput struct {
	ClientID string
	Date     string
	DueDate  string
	Items    []InvoiceItemInput
}

// RecordPaymentInput is the payment form. The client is taken from the
// invoice, never from the caller.
type RecordPaymentInput struct {
	InvoiceID string
	Amount    float64
	Method    domain.PaymentMethod
	Note      string
}

type BillingService interface {
	ListInvoices(ctx context.Context) []InvoiceSummary
	GetInvoice(ctx context.Context, id string) (InvoiceSummary, error)

	// CreateInvoice issues a new invoice numbered INV-<year>-<NNN>.
	CreateInvoice(ctx context.Context, in CreateInvoiceInput) (domain.Invoice, error)

	// InvoiceFromPlan issues a one-line invoice billing the plan's
	// discounted price to the client.
	InvoiceFromPlan(ctx context.Context, clientID, planID string) (domain.Invoice, error)

	// RecordPayment books a payment against an invoice and re-derives its
	// status.
	RecordPayment(ctx context.Context, in RecordPaymentInput) (domain.Transaction, error)

	ListTransactions(ctx context.Context) []domain.Transaction

	// PrintableInvoice renders the invoice as a standalone HTML document.
	PrintableInvoice(ctx context.Context, id string) ([]byte, error)
}

type billingService struct {
	store *store.Store
}

func NewBillingService(st *store.Store) BillingService {
	return &billingService{store: st}
}

func (s *billingService) ListInvoices(ctx context.Context) []InvoiceSummary {
	data := s.store.Snapshot()
	today := time.Now().Format(domain.DateLayout)
	out := make([]InvoiceSummary, 0, len(data.Invoices))
	for _, inv := range data.Invoices {
		out = append(out, summarize(data, inv, today))
	}
	return out
}

func (s *billingService) GetInvoice(ctx context.Context, id string) (InvoiceSummary, error) {
	data := s.store.Snapshot()
	inv, ok := data.FindInvoice(id)
	if !ok {
		return InvoiceSummary{}, fmt.Errorf("%w: invoice %q", store.ErrNotFound, id)
	}
	return summarize(data, inv, time.Now().Format(domain.DateLayout)), nil
}

func (s *billingService) CreateInvoice(ctx context.Context, in CreateInvoiceInput) (domain.Invoice, error) {
	data := s.store.Snapshot()

	date := in.Date
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	dueDate := in.DueDate
	if dueDate == "" {
		dueDate = date
	}

	items := make([]domain.InvoiceItem, 0, len(in.Items))
	var total float64
	for _, it := range in.Items {
		items = append(items, domain.InvoiceItem{Description: it.Description, Amount: it.Amount})
		total += it.Amount
	}

	inv := domain.Invoice{
		ID:          domain.NextInvoiceID(time.Now().Year(), len(data.Invoices)),
		ClientID:    in.ClientID,
		Date:        date,
		DueDate:     dueDate,
		Items:       items,
		TotalAmount: total,
		Status:      domain.InvoicePending,
	}
	if err := s.store.AddInvoice(ctx, inv); err != nil {
		return domain.Invoice{}, err
	}
	return inv, nil
}

func (s *billingService) InvoiceFromPlan(ctx context.Context, clientID, planID string) (domain.Invoice, error) {
	data := s.store.Snapshot()
	plan, ok := data.FindPlan(planID)
	if !ok {
		return domain.Invoice{}, fmt.Errorf("%w: plan %q", store.ErrNotFound, planID)
	}
	return s.CreateInvoice(ctx, CreateInvoiceInput{
		ClientID: clientID,
		Items: []InvoiceItemInput{
			{Description: "Plan: " + plan.Title, Amount: plan.EffectivePrice()},
		},
	})
}

func (s *billingService) RecordPayment(ctx context.Context, in RecordPaymentInput) (domain.Transaction, error) {
	data := s.store.Snapshot()
	inv, ok := data.FindInvoice(in.InvoiceID)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: invoice %q", store.ErrNotFound, in.InvoiceID)
	}

	tx := domain.Transaction{
		ID:        domain.NewTransactionID(),
		InvoiceID: inv.ID,
		ClientID:  inv.ClientID,
		Amount:    in.Amount,
		Date:      time.Now().Format(domain.DateLayout),
		Method:    in.Method,
		Note:      in.Note,
	}
	if _, err := s.store.AddTransaction(ctx, tx); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

func (s *billingService) ListTransactions(ctx context.Context) []domain.Transaction {
	return s.store.Snapshot().Transactions
}

func (s *billingService) PrintableInvoice(ctx context.Context, id string) ([]byte, error) {
	data := s.store.Snapshot()
	inv, ok := data.FindInvoice(id)
	if !ok {
		return nil, fmt.Errorf("%w: invoice %q", store.ErrNotFound, id)
	}
	doc := printing.BuildDocument(data, inv, query.TotalPaid(data, inv.ID))
	return printing.Render(doc)
}

func summarize(data domain.AppData, inv domain.Invoice, today string) InvoiceSummary {
	inv.Status = query.EffectiveStatus(data, inv, today)
	return InvoiceSummary{
		Invoice:    inv,
		ClientName: nameOrUnknown(data.FindClient(inv.ClientID)),
		Paid:       query.TotalPaid(data, inv.ID),
		Balance:    query.BalanceDue(data, inv),
	}
}
