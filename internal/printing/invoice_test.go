package printing

import (
	"testing"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/query"
	"dhanbad/wellness-admin/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDocument(t *testing.T) {
	data := seed.Data()
	inv, ok := data.FindInvoice("INV-2025-005")
	require.True(t, ok)

	doc := BuildDocument(data, inv, query.TotalPaid(data, inv.ID))
	assert.Equal(t, "Amit Kumar", doc.ClientName)
	assert.Equal(t, "+91-9900000005", doc.ClientPhone)
	assert.Equal(t, "Dhanbad Wellness — Main", doc.Center.Name)
	assert.Equal(t, float64(2000), doc.Paid)
	assert.Equal(t, float64(10800), doc.Balance)
	assert.False(t, doc.ShowPaid)
	assert.False(t, doc.ShowOverdue)
}

func TestBuildDocumentUnknownClient(t *testing.T) {
	data := seed.Data()
	inv := domain.Invoice{
		ID: "INV-2025-099", ClientID: "CL999", Date: "2025-11-25", DueDate: "2025-12-02",
		Items:       []domain.InvoiceItem{{Description: "Consultation", Amount: 500}},
		TotalAmount: 500, Status: domain.InvoicePending,
	}

	doc := BuildDocument(data, inv, 0)
	assert.Equal(t, "Unknown", doc.ClientName)
	assert.Equal(t, "CL999", doc.ClientID)
	assert.Empty(t, doc.ClientPhone)
}

func TestBuildDocumentStamps(t *testing.T) {
	data := seed.Data()

	paid, _ := data.FindInvoice("INV-2025-001")
	doc := BuildDocument(data, paid, query.TotalPaid(data, paid.ID))
	assert.True(t, doc.ShowPaid)
	assert.False(t, doc.ShowOverdue)

	overdue, _ := data.FindInvoice("INV-2025-004")
	doc = BuildDocument(data, overdue, query.TotalPaid(data, overdue.ID))
	assert.False(t, doc.ShowPaid)
	assert.True(t, doc.ShowOverdue)
}

func TestRender(t *testing.T) {
	data := seed.Data()
	inv, _ := data.FindInvoice("INV-2025-004")

	out, err := Render(BuildDocument(data, inv, query.TotalPaid(data, inv.ID)))
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "INV-2025-004")
	assert.Contains(t, html, "Priya Singh")
	assert.Contains(t, html, "TAX INVOICE")
	assert.Contains(t, html, "GSTIN: 20AAAAA0000A1Z5")
	assert.Contains(t, html, "12,750.00")
	assert.Contains(t, html, "7,750.00") // balance due
	assert.Contains(t, html, "OVERDUE")
	assert.NotContains(t, html, ">PAID<")
}

func TestRenderEscapesClientInput(t *testing.T) {
	data := seed.Data()
	data.Clients[0].Name = `<script>alert(1)</script>`
	inv, _ := data.FindInvoice("INV-2025-001")

	out, err := Render(BuildDocument(data, inv, query.TotalPaid(data, inv.ID)))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>alert(1)</script>")
	assert.Contains(t, string(out), "&lt;script&gt;")
}

func TestINRFormatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{950, "950.00"},
		{1500, "1,500.00"},
		{12750.5, "12,750.50"},
		{123456, "1,23,456.00"},
		{12345678.9, "1,23,45,678.90"},
		{-1500, "-1,500.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inr(tc.in), "inr(%v)", tc.in)
	}
}
