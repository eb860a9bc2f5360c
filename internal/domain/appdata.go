// Package domain defines the entities of the wellness-clinic aggregate and
// their structural validation rules. Entities carry no behaviour beyond
// validation and small derivations; all state changes go through the store.
package domain

import "errors"

// Validation sentinels shared by the entity Validate methods.
var (
	ErrEmptyID            = errors.New("empty id")
	ErrEmptyName          = errors.New("empty name")
	ErrEmptyReference     = errors.New("empty reference id")
	ErrEmptyDate          = errors.New("empty date")
	ErrInvalidAge         = errors.New("invalid age")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDiscount    = errors.New("discount must be between 0 and 100")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidEnum        = errors.New("invalid enumeration value")
	ErrNoItems            = errors.New("invoice has no items")
	ErrTotalMismatch      = errors.New("invoice total does not match items")
	ErrMissingCollections = errors.New("client list fields must be present")
)

// AppData is the complete aggregate: every collection the application knows
// about, persisted and loaded as one unit. Appointments are stored in insert
// order; invoices and transactions are kept most-recent-first.
type AppData struct {
	Centers      []Center      `json:"centers"`
	Trainers     []Trainer     `json:"trainers"`
	Clients      []Client      `json:"clients"`
	Plans        []Plan        `json:"plans"`
	Appointments []Appointment `json:"appointments"`
	Invoices     []Invoice     `json:"invoices"`
	Transactions []Transaction `json:"transactions"`
}

// Normalize replaces nil collections with empty ones. Blobs persisted before
// invoicing existed lack the invoices and transactions keys, and a decoded
// aggregate must never carry nil slices into the command path.
func (d *AppData) Normalize() {
	if d.Centers == nil {
		d.Centers = []Center{}
	}
	if d.Trainers == nil {
		d.Trainers = []Trainer{}
	}
	if d.Clients == nil {
		d.Clients = []Client{}
	}
	if d.Plans == nil {
		d.Plans = []Plan{}
	}
	if d.Appointments == nil {
		d.Appointments = []Appointment{}
	}
	if d.Invoices == nil {
		d.Invoices = []Invoice{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
}

// Clone returns a deep copy. Snapshots handed to readers must not alias the
// store's live aggregate.
func (d AppData) Clone() AppData {
	out := AppData{
		Centers:      make([]Center, len(d.Centers)),
		Trainers:     make([]Trainer, len(d.Trainers)),
		Clients:      make([]Client, len(d.Clients)),
		Plans:        make([]Plan, len(d.Plans)),
		Appointments: make([]Appointment, len(d.Appointments)),
		Invoices:     make([]Invoice, len(d.Invoices)),
		Transactions: make([]Transaction, len(d.Transactions)),
	}
	copy(out.Centers, d.Centers)
	copy(out.Plans, d.Plans)
	copy(out.Appointments, d.Appointments)
	copy(out.Transactions, d.Transactions)
	for i, t := range d.Trainers {
		t.Specialties = append([]string{}, t.Specialties...)
		out.Trainers[i] = t
	}
	for i, c := range d.Clients {
		c.Trainers = append([]string{}, c.Trainers...)
		c.Plans = append([]string{}, c.Plans...)
		c.Medicines = append([]Medicine{}, c.Medicines...)
		c.Progress = append([]ProgressLog{}, c.Progress...)
		out.Clients[i] = c
	}
	for i, inv := range d.Invoices {
		inv.Items = append([]InvoiceItem{}, inv.Items...)
		out.Invoices[i] = inv
	}
	return out
}

// --- Lookup helpers ---
// All lookups tolerate unknown ids; callers get (zero, false) and decide how
// to present the gap.

func (d AppData) FindCenter(id string) (Center, bool) {
	for _, c := range d.Centers {
		if c.ID == id {
			return c, true
		}
	}
	return Center{}, false
}

func (d AppData) FindTrainer(id string) (Trainer, bool) {
	for _, t := range d.Trainers {
		if t.ID == id {
			return t, true
		}
	}
	return Trainer{}, false
}

func (d AppData) FindClient(id string) (Client, bool) {
	for _, c := range d.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

func (d AppData) FindPlan(id string) (Plan, bool) {
	for _, p := range d.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func (d AppData) FindInvoice(id string) (Invoice, bool) {
	for _, inv := range d.Invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return Invoice{}, false
}
