// Package printing renders a printable invoice document. It consumes only
// the query surface: invoice, client and payment totals go in, a complete
// HTML page comes out, and nothing is written back to the store.
package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"dhanbad/wellness-admin/internal/domain"
)

// InvoiceDocument is everything the template needs, pre-derived.
type InvoiceDocument struct {
	Invoice     domain.Invoice
	Center      domain.Center // letterhead: the chain's main center
	ClientName  string
	ClientID    string
	ClientPhone string
	Paid        float64
	Balance     float64
	ShowPaid    bool
	ShowOverdue bool
}

// BuildDocument derives the document data from a snapshot. Unknown client
// references render as "Unknown"; a missing center leaves the letterhead
// blank.
func BuildDocument(data domain.AppData, inv domain.Invoice, paid float64) InvoiceDocument {
	doc := InvoiceDocument{
		Invoice:    inv,
		ClientName: "Unknown",
		ClientID:   inv.ClientID,
		Paid:       paid,
		Balance:    inv.TotalAmount - paid,
	}
	if len(data.Centers) > 0 {
		doc.Center = data.Centers[0]
	}
	if c, ok := data.FindClient(inv.ClientID); ok {
		doc.ClientName = c.Name
		doc.ClientPhone = c.Phone
	}
	doc.ShowPaid = doc.Balance <= 0
	doc.ShowOverdue = inv.Status == domain.InvoiceOverdue && doc.Balance > 0
	return doc
}

// Render produces the full printable HTML page.
func Render(doc InvoiceDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", doc.Invoice.ID, err)
	}
	return buf.Bytes(), nil
}

// inr formats an amount the way the dashboard shows money: Indian digit
// grouping with two decimals.
func inr(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := int64(v)
	frac := int64((v-float64(whole))*100 + 0.5)
	if frac >= 100 {
		whole++
		frac -= 100
	}
	s := fmt.Sprintf("%d", whole)
	// Indian grouping: last three digits, then pairs.
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		s = strings.Join(parts, ",") + "," + tail
	}
	out := fmt.Sprintf("%s.%02d", s, frac)
	if neg {
		out = "-" + out
	}
	return out
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"inr": inr,
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Invoice {{.Invoice.ID}}</title>
    <style>
      @page { size: A4; margin: 0; }
      body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; color: #333; margin: 0; padding: 40px; }
      .container { position: relative; min-height: 100%; }
      .top-bar { background: #f8f9fa; padding: 20px; display: flex; justify-content: space-between; align-items: center; border-bottom: 1px solid #ddd; }
      .logo { font-size: 20px; font-weight: bold; color: #10b981; }
      .header { display: flex; justify-content: space-between; margin: 30px 0; }
      .client-card { background: #fcfcfc; border: 1px solid #eee; padding: 15px; border-radius: 6px; width: 50%; }
      .client-card .sub { font-size: 12px; color: #777; }
      table { width: 100%; border-collapse: collapse; }
      th { text-align: left; padding: 12px 15px; background: #374151; color: white; font-size: 12px; text-transform: uppercase; letter-spacing: 1px; }
      td { padding: 12px 15px; border-bottom: 1px solid #eee; }
      .col-amount { text-align: right; }
      tr:nth-child(even) { background-color: #f9fafb; }
      .totals-section { margin-top: 20px; display: flex; justify-content: flex-end; }
      .totals-table { width: 45%; }
      .totals-table .label { color: #666; }
      .totals-table .value { text-align: right; }
      .grand-total td { font-weight: bold; border-top: 2px solid #374151; }
      .stamp { position: absolute; top: 45%; right: 15%; border: 3px solid #10b981; color: #10b981; font-size: 32px; font-weight: bold; padding: 10px 30px; text-transform: uppercase; transform: rotate(-15deg); opacity: 0.15; border-radius: 8px; }
      .paid-stamp { border-color: #10b981; color: #10b981; }
      .overdue-stamp { border-color: #ef4444; color: #ef4444; opacity: 0.2; }
      .footer { margin-top: 60px; border-top: 1px solid #eee; background: #fcfcfc; padding: 20px 0; text-align: center; font-size: 11px; color: #999; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="top-bar">
        <div class="logo">Dhanbad Wellness</div>
        <div>Original For Recipient</div>
      </div>

      <div class="header">
        <div>
          <h2>{{.Center.Name}}</h2>
          <p>{{.Center.Address}}</p>
          <p>Phone: {{.Center.Phone}}</p>
          <p>Email: admin@dhanbad.well</p>
          <p><strong>GSTIN: 20AAAAA0000A1Z5</strong></p>
        </div>
        <div>
          <h1>TAX INVOICE</h1>
          <table>
            <tr><td class="label">Invoice #:</td><td>{{.Invoice.ID}}</td></tr>
            <tr><td class="label">Date:</td><td>{{.Invoice.Date}}</td></tr>
            <tr><td class="label">Due Date:</td><td>{{.Invoice.DueDate}}</td></tr>
            <tr><td class="label">Place of Supply:</td><td>Jharkhand (20)</td></tr>
          </table>
        </div>
      </div>

      <div>
        <h3>Bill To</h3>
        <div class="client-card">
          <p>{{.ClientName}}</p>
          <div class="sub">Client ID: {{.ClientID}}</div>
          <div class="sub">Phone: {{.ClientPhone}}</div>
          <div class="sub">State: Jharkhand</div>
        </div>
      </div>

      <table>
        <thead>
          <tr>
            <th>Description of Services</th>
            <th class="col-amount">Amount (INR)</th>
          </tr>
        </thead>
        <tbody>
          {{range .Invoice.Items}}
          <tr>
            <td>
              <strong>{{.Description}}</strong>
              <div style="font-size: 11px; color: #888; margin-top: 2px;">SAC: 999312 - Wellness Services</div>
            </td>
            <td class="col-amount">&#8377;{{inr .Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>

      <div class="totals-section">
        <table class="totals-table">
          <tr><td class="label">Taxable Value</td><td class="value">&#8377;{{inr .Invoice.TotalAmount}}</td></tr>
          <tr><td class="label">CGST (0%)</td><td class="value">&#8377;0.00</td></tr>
          <tr><td class="label">SGST (0%)</td><td class="value">&#8377;0.00</td></tr>
          <tr class="grand-total"><td class="label">Total Amount</td><td class="value">&#8377;{{inr .Invoice.TotalAmount}}</td></tr>
          <tr><td class="label">Amount Paid</td><td class="value">(-) &#8377;{{inr .Paid}}</td></tr>
          <tr><td class="label">Balance Due</td><td class="value">&#8377;{{inr .Balance}}</td></tr>
        </table>
      </div>

      {{if .ShowPaid}}<div class="stamp paid-stamp">PAID</div>{{end}}
      {{if .ShowOverdue}}<div class="stamp overdue-stamp">OVERDUE</div>{{end}}

      <div class="footer">
        <p>Thank you for choosing Dhanbad Wellness. | This is a computer generated invoice.</p>
        <p>Terms &amp; Conditions Apply. Interest @18% pa will be charged on overdue payments.</p>
      </div>
    </div>
  </body>
</html>
`))
