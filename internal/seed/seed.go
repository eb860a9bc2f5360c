// Package seed holds the demo dataset the application starts from when no
// persisted state exists, and which an explicit reset restores.
package seed

import "dhanbad/wellness-admin/internal/domain"

// Data returns a fresh copy of the seed aggregate. Callers may mutate the
// result freely.
func Data() domain.AppData {
	return initialData.Clone()
}

var initialData = domain.AppData{
	Centers: []domain.Center{
		{ID: "C1", Name: "Dhanbad Wellness — Main", Address: "Station Road, Dhanbad", Phone: "+91-9000000001"},
		{ID: "C2", Name: "Dhanbad East Center", Address: "Karmabandh, Dhanbad", Phone: "+91-9000000002"},
		{ID: "C3", Name: "Sindri Wellness Hub", Address: "Sindri, near market", Phone: "+91-9000000003"},
		{ID: "C4", Name: "Bokaro Outreach", Address: "Bokaro Road", Phone: "+91-9000000004"},
		{ID: "C5", Name: "Nearby Health Point", Address: "Jharia, Dhanbad", Phone: "+91-9000000005"},
	},
	Trainers: []domain.Trainer{
		{ID: "T1", Name: "Anita Sharma", CenterID: "C1", Specialties: []string{"Yoga", "Lifestyle"}, Phone: "+91-9810000001"},
		{ID: "T2", Name: "Ravi Kumar", CenterID: "C2", Specialties: []string{"Yoga", "Diet"}, Phone: "+91-9810000002"},
		{ID: "T3", Name: "Sunita Verma", CenterID: "C3", Specialties: []string{"Physio", "Yoga"}, Phone: "+91-9810000003"},
		{ID: "T4", Name: "Dr. A. Khan", CenterID: "C1", Specialties: []string{"Physio", "Rehab"}, Phone: "+91-9810000004"},
	},
	Clients: []domain.Client{
		{
			ID: "CL1", Name: "Suresh Gupta", CenterID: "C1", Age: 52, Phone: "+91-9900000001",
			Metrics:   domain.Metrics{WeightKg: 78, BP: "140/90", Sugar: 160},
			Trainers:  []string{"T1"},
			Plans:     []string{"P1"},
			Medicines: []domain.Medicine{{Name: "Amlodipine", Dose: "5mg once daily"}},
			Progress:  []domain.ProgressLog{{Date: "2025-11-01", Note: "Started yoga", WeightKg: 79}},
		},
		{
			ID: "CL2", Name: "Meena Devi", CenterID: "C2", Age: 45, Phone: "+91-9900000002",
			Metrics:   domain.Metrics{WeightKg: 65, BP: "120/80", Sugar: 110},
			Trainers:  []string{"T2"},
			Plans:     []string{},
			Medicines: []domain.Medicine{},
			Progress:  []domain.ProgressLog{},
		},
		{
			ID: "CL3", Name: "Rahul Verma", CenterID: "C1", Age: 29, Phone: "+91-9900000003",
			Metrics:   domain.Metrics{WeightKg: 82, BP: "110/70", Sugar: 90},
			Trainers:  []string{"T4"},
			Plans:     []string{"P2"},
			Medicines: []domain.Medicine{{Name: "Pain Killer (SOS)", Dose: "As needed"}},
			Progress:  []domain.ProgressLog{{Date: "2025-11-10", Note: "Back pain reduced", WeightKg: 81.5}},
		},
		{
			ID: "CL4", Name: "Priya Singh", CenterID: "C3", Age: 34, Phone: "+91-9900000004",
			Metrics:   domain.Metrics{WeightKg: 70, BP: "115/75", Sugar: 95},
			Trainers:  []string{"T3"},
			Plans:     []string{"P3"},
			Medicines: []domain.Medicine{},
			Progress:  []domain.ProgressLog{{Date: "2025-11-05", Note: "Started diet", WeightKg: 70}},
		},
		{
			ID: "CL5", Name: "Amit Kumar", CenterID: "C1", Age: 40, Phone: "+91-9900000005",
			Metrics:   domain.Metrics{WeightKg: 90, BP: "135/85", Sugar: 140},
			Trainers:  []string{"T1"},
			Plans:     []string{"P1"},
			Medicines: []domain.Medicine{},
			Progress:  []domain.ProgressLog{},
		},
		{
			ID: "CL6", Name: "Sneha Roy", CenterID: "C2", Age: 26, Phone: "+91-9900000006",
			Metrics:   domain.Metrics{WeightKg: 55, BP: "110/70", Sugar: 85},
			Trainers:  []string{"T2"},
			Plans:     []string{"P3"},
			Medicines: []domain.Medicine{},
			Progress:  []domain.ProgressLog{},
		},
		{
			ID: "CL7", Name: "Vikram Malhotra", CenterID: "C4", Age: 60, Phone: "+91-9900000007",
			Metrics:   domain.Metrics{WeightKg: 75, BP: "150/95", Sugar: 180},
			Trainers:  []string{},
			Plans:     []string{},
			Medicines: []domain.Medicine{{Name: "Metformin", Dose: "500mg BD"}},
			Progress:  []domain.ProgressLog{},
		},
	},
	Plans: []domain.Plan{
		{
			ID: "P1", Title: "Hypertension — 12 week yoga + diet", Type: domain.PlanCombined,
			Yoga: "Daily morning 30 min sequence", Diet: "Low salt, high fibre, controlled carbs",
			StartDate: "2025-11-01", DurationWeeks: 12, Price: 12000, Discount: 10,
		},
		{
			ID: "P2", Title: "Post-Injury Recovery — 8 week physio", Type: domain.PlanPhysio,
			Yoga:      "Gentle stretching, 2x per week",
			StartDate: "2025-11-01", DurationWeeks: 8, Price: 8500, Discount: 0,
		},
		{
			ID: "P3", Title: "Weight Loss — 16 week combined", Type: domain.PlanCombined,
			Yoga: "Vinyasa flow, 5x per week", Diet: "Calorie deficit, protein-rich",
			StartDate: "2025-11-01", DurationWeeks: 16, Price: 15000, Discount: 15,
		},
	},
	Appointments: []domain.Appointment{
		{ID: "A1", CenterID: "C1", TrainerID: "T1", ClientID: "CL1", Start: "2025-11-22T09:00:00", End: "2025-11-22T09:30:00", Type: domain.AppointmentFollowUp, Notes: "Check BP and adjust plan"},
		{ID: "A2", CenterID: "C1", TrainerID: "T4", ClientID: "CL3", Start: "2025-11-22T10:00:00", End: "2025-11-22T10:45:00", Type: domain.AppointmentInitial, Notes: "Back pain assessment"},
		{ID: "A3", CenterID: "C3", TrainerID: "T3", ClientID: "CL4", Start: "2025-11-23T08:00:00", End: "2025-11-23T09:00:00", Type: domain.AppointmentYogaClass, Notes: "Morning group session"},
		{ID: "A4", CenterID: "C2", TrainerID: "T2", ClientID: "CL6", Start: "2025-11-23T11:00:00", End: "2025-11-23T11:30:00", Type: domain.AppointmentFollowUp, Notes: "Diet review"},
		{ID: "A5", CenterID: "C1", TrainerID: "T1", ClientID: "CL5", Start: "2025-11-24T09:00:00", End: "2025-11-24T09:30:00", Type: domain.AppointmentTeleconsult, Notes: "Weekly check-in"},
		{ID: "A6", CenterID: "C1", TrainerID: "T4", ClientID: "CL3", Start: "2025-11-25T16:00:00", End: "2025-11-25T16:45:00", Type: domain.AppointmentFollowUp, Notes: "Physio session 2"},
		// A7: T1 visits C4 for this one.
		{ID: "A7", CenterID: "C4", TrainerID: "T1", ClientID: "CL7", Start: "2025-11-26T10:00:00", End: "2025-11-26T11:00:00", Type: domain.AppointmentInitial, Notes: "Senior citizen assessment"},
		{ID: "A8", CenterID: "C2", TrainerID: "T2", ClientID: "CL2", Start: "2025-11-26T14:00:00", End: "2025-11-26T14:30:00", Type: domain.AppointmentFollowUp, Notes: "Routine check"},
	},
	Invoices: []domain.Invoice{
		{
			ID: "INV-2025-001", ClientID: "CL1", Date: "2025-11-01", DueDate: "2025-11-15",
			Items:       []domain.InvoiceItem{{Description: "Hypertension — 12 week yoga + diet", Amount: 10800}},
			TotalAmount: 10800, Status: domain.InvoicePaid,
		},
		{
			ID: "INV-2025-002", ClientID: "CL2", Date: "2025-11-20", DueDate: "2025-11-27",
			Items:       []domain.InvoiceItem{{Description: "Initial Consultation", Amount: 1500}},
			TotalAmount: 1500, Status: domain.InvoicePending,
		},
		{
			ID: "INV-2025-003", ClientID: "CL3", Date: "2025-11-10", DueDate: "2025-11-17",
			Items:       []domain.InvoiceItem{{Description: "Post-Injury Recovery Plan", Amount: 8500}},
			TotalAmount: 8500, Status: domain.InvoicePaid,
		},
		{
			ID: "INV-2025-004", ClientID: "CL4", Date: "2025-11-05", DueDate: "2025-11-12",
			Items:       []domain.InvoiceItem{{Description: "Weight Loss Plan (15% Off)", Amount: 12750}},
			TotalAmount: 12750, Status: domain.InvoiceOverdue,
		},
		{
			ID: "INV-2025-005", ClientID: "CL5", Date: "2025-11-21", DueDate: "2025-11-28",
			Items: []domain.InvoiceItem{
				{Description: "Hypertension Plan", Amount: 10800},
				{Description: "Supplements Pack", Amount: 2000},
			},
			TotalAmount: 12800, Status: domain.InvoicePending,
		},
		{
			ID: "INV-2025-006", ClientID: "CL6", Date: "2025-11-15", DueDate: "2025-11-22",
			Items:       []domain.InvoiceItem{{Description: "Yoga Class Pass (10 sessions)", Amount: 3000}},
			TotalAmount: 3000, Status: domain.InvoicePaid,
		},
	},
	Transactions: []domain.Transaction{
		{ID: "TRX-101", InvoiceID: "INV-2025-001", ClientID: "CL1", Amount: 5000, Date: "2025-11-02", Method: domain.MethodUPI, Note: "Part payment"},
		{ID: "TRX-102", InvoiceID: "INV-2025-001", ClientID: "CL1", Amount: 5800, Date: "2025-11-05", Method: domain.MethodCash, Note: "Final settlement"},
		{ID: "TRX-103", InvoiceID: "INV-2025-003", ClientID: "CL3", Amount: 8500, Date: "2025-11-10", Method: domain.MethodCard, Note: "Full payment"},
		{ID: "TRX-104", InvoiceID: "INV-2025-004", ClientID: "CL4", Amount: 5000, Date: "2025-11-06", Method: domain.MethodUPI, Note: "Advance"},
		{ID: "TRX-105", InvoiceID: "INV-2025-006", ClientID: "CL6", Amount: 3000, Date: "2025-11-15", Method: domain.MethodUPI, Note: "Class pass"},
		{ID: "TRX-106", InvoiceID: "INV-2025-005", ClientID: "CL5", Amount: 2000, Date: "2025-11-21", Method: domain.MethodCash, Note: "Supplements paid"},
	},
}
