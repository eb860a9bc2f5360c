// Package store owns the application aggregate. Every mutation funnels
// through one of its commands: the command validates its input, builds the
// next aggregate, persists it, and only then commits it in memory. Readers
// work from deep-copied snapshots and never see a half-applied change.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/seed"
	"dhanbad/wellness-admin/internal/storage"

	"go.uber.org/zap"
)

// Error kinds returned by store commands. Callers pick these apart with
// errors.Is and decide how to surface them.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrPersistence = errors.New("persistence failed")
)

// Store holds the live aggregate. The mutex makes commands atomic under the
// concurrent HTTP surface; logically the discipline is still single-writer,
// many-reader.
type Store struct {
	mu      sync.RWMutex
	data    domain.AppData
	storage storage.SnapshotStorage
	log     *zap.Logger
}

// Open loads the persisted aggregate, falling back to the seed dataset when
// nothing is persisted yet or when the stored blob does not decode. The
// resulting aggregate is persisted immediately so storage and memory agree
// from the first command on.
func Open(ctx context.Context, st storage.SnapshotStorage, log *zap.Logger) (*Store, error) {
	data, found, err := st.Load(ctx)
	switch {
	case err != nil:
		log.Warn("stored snapshot unusable, falling back to seed data", zap.Error(err))
		data = seed.Data()
	case !found:
		log.Info("no persisted state, starting from seed data")
		data = seed.Data()
	default:
		log.Info("loaded persisted state",
			zap.Int("clients", len(data.Clients)),
			zap.Int("appointments", len(data.Appointments)),
			zap.Int("invoices", len(data.Invoices)))
	}
	data.Normalize()

	if err := st.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &Store{data: data, storage: st, log: log}, nil
}

// Snapshot returns a deep-copied point-in-time view of the aggregate.
func (s *Store) Snapshot() domain.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// commit persists next and, only on success, installs it as the live
// aggregate. Callers hold the write lock.
func (s *Store) commit(ctx context.Context, next domain.AppData) error {
	if err := s.storage.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.data = next
	return nil
}

// AddAppointment appends a booking. The store performs no conflict check:
// schedulers are expected to consult the conflict query first, and duplicate
// or overlapping bookings are accepted silently.
func (s *Store) AddAppointment(ctx context.Context, appt domain.Appointment) error {
	if err := appt.Validate(); err != nil {
		return fmt.Errorf("%w: appointment: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	next.Appointments = append(next.Appointments, appt)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("appointment added", zap.String("id", appt.ID), zap.String("trainer", appt.TrainerID), zap.String("start", appt.Start))
	return nil
}

// DeleteAppointment removes a booking by id.
func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	idx := -1
	for i, a := range next.Appointments {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: appointment %q", ErrNotFound, id)
	}
	next.Appointments = append(next.Appointments[:idx], next.Appointments[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("appointment deleted", zap.String("id", id))
	return nil
}

// AddClient registers a client. The caller supplies all sub-objects (metrics
// and the list fields); the store does not default them.
func (s *Store) AddClient(ctx context.Context, client domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("%w: client: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	next.Clients = append(next.Clients, client)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("client registered", zap.String("id", client.ID), zap.String("name", client.Name))
	return nil
}

// AddProgress appends a progress log to the named client and overwrites the
// client's metrics weight with the logged weight. Other clients are never
// touched.
func (s *Store) AddProgress(ctx context.Context, clientID string, log domain.ProgressLog) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("%w: progress log: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	idx := -1
	for i, c := range next.Clients {
		if c.ID == clientID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: client %q", ErrNotFound, clientID)
	}
	next.Clients[idx].Progress = append(next.Clients[idx].Progress, log)
	next.Clients[idx].Metrics.WeightKg = log.WeightKg
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("progress logged", zap.String("client", clientID), zap.Float64("weightKg", log.WeightKg))
	return nil
}

// AddPlan appends a plan template.
func (s *Store) AddPlan(ctx context.Context, plan domain.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("%w: plan: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	next.Plans = append(next.Plans, plan)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("plan added", zap.String("id", plan.ID), zap.String("title", plan.Title))
	return nil
}

// DeletePlan removes a plan template. Clients referencing the plan keep the
// id in their plans list; readers resolve it as unknown. Soft-delete on
// purpose, not an oversight.
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	idx := -1
	for i, p := range next.Plans {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: plan %q", ErrNotFound, id)
	}
	next.Plans = append(next.Plans[:idx], next.Plans[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("plan deleted", zap.String("id", id))
	return nil
}

// AddInvoice prepends an invoice (most recent first). TotalAmount is checked
// against the items once, here; it is not re-validated afterwards.
func (s *Store) AddInvoice(ctx context.Context, inv domain.Invoice) error {
	if err := inv.Validate(); err != nil {
		return fmt.Errorf("%w: invoice: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	next.Invoices = append([]domain.Invoice{inv}, next.Invoices...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info("invoice issued", zap.String("id", inv.ID), zap.String("client", inv.ClientID), zap.Float64("total", inv.TotalAmount))
	return nil
}

// AddTransaction prepends a payment and re-derives the owning invoice's
// status: paid once the sum of all payments against it reaches the invoice
// total, pending otherwise. When the referenced invoice is unknown the
// payment is still recorded and linked reports false, so callers can tell
// the two outcomes apart without losing the payment.
func (s *Store) AddTransaction(ctx context.Context, tx domain.Transaction) (linked bool, err error) {
	if err := tx.Validate(); err != nil {
		return false, fmt.Errorf("%w: transaction: %v", ErrValidation, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	next.Transactions = append([]domain.Transaction{tx}, next.Transactions...)

	for i, inv := range next.Invoices {
		if inv.ID != tx.InvoiceID {
			continue
		}
		linked = true
		var paid float64
		for _, t := range next.Transactions {
			if t.InvoiceID == inv.ID {
				paid += t.Amount
			}
		}
		status := domain.InvoicePending
		if paid >= inv.TotalAmount {
			status = domain.InvoicePaid
		}
		next.Invoices[i].Status = status
		break
	}

	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	s.log.Info("payment recorded",
		zap.String("id", tx.ID),
		zap.String("invoice", tx.InvoiceID),
		zap.Float64("amount", tx.Amount),
		zap.Bool("linked", linked))
	return linked, nil
}

// Reset replaces the aggregate with the seed dataset. Callers are expected
// to have obtained an explicit confirmation first.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, seed.Data()); err != nil {
		return err
	}
	s.log.Warn("all data reset to seed dataset")
	return nil
}
