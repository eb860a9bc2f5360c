package service

import (
	"context"
	"errors"
	"fmt"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/query"
	"dhanbad/wellness-admin/internal/store"
)

// --- Error Definitions ---
var (
	ErrScheduleConflict = errors.New("trainer already booked at this start time")
)

// AppointmentDetails is an appointment enriched with resolved names for the
// schedule views. Dangling references come out as "Unknown".
type AppointmentDetails struct {
	domain.Appointment
	ClientName  string `json:"clientName"`
	TrainerName string `json:"trainerName"`
	CenterName  string `json:"centerName"`
}

// ScheduleInput is the booking form.
type ScheduleInput struct {
	CenterID  string
	TrainerID string
	ClientID  string
	Start     string
	End       string
	Type      domain.AppointmentType
	Notes     string
}

type SchedulingService interface {
	// ListAppointments returns all bookings sorted by start time ascending.
	ListAppointments(ctx context.Context) []AppointmentDetails

	// Schedule books an appointment after checking the exact-start conflict
	// rule for the trainer. Conflicting bookings return ErrScheduleConflict.
	Schedule(ctx context.Context, in ScheduleInput) (domain.Appointment, error)

	// Cancel removes a booking.
	Cancel(ctx context.Context, id string) error

	// HasConflict exposes the conflict query so callers can warn before
	// submitting.
	HasConflict(ctx context.Context, trainerID, start string) bool
}

type schedulingService struct {
	store *store.Store
}

func NewSchedulingService(st *store.Store) SchedulingService {
	return &schedulingService{store: st}
}

func (s *schedulingService) ListAppointments(ctx context.Context) []AppointmentDetails {
	data := s.store.Snapshot()
	sorted := query.SortedAppointments(data)
	out := make([]AppointmentDetails, 0, len(sorted))
	for _, a := range sorted {
		out = append(out, AppointmentDetails{
			Appointment: a,
			ClientName:  nameOrUnknown(data.FindClient(a.ClientID)),
			TrainerName: trainerNameOrUnknown(data.FindTrainer(a.TrainerID)),
			CenterName:  centerNameOrUnknown(data.FindCenter(a.CenterID)),
		})
	}
	return out
}

func (s *schedulingService) Schedule(ctx context.Context, in ScheduleInput) (domain.Appointment, error) {
	data := s.store.Snapshot()
	if query.HasSchedulingConflict(data, in.TrainerID, in.Start) {
		return domain.Appointment{}, fmt.Errorf("%w: trainer %s at %s", ErrScheduleConflict, in.TrainerID, in.Start)
	}

	appt := domain.Appointment{
		ID:        domain.NewAppointmentID(),
		CenterID:  in.CenterID,
		TrainerID: in.TrainerID,
		ClientID:  in.ClientID,
		Start:     in.Start,
		End:       in.End,
		Type:      in.Type,
		Notes:     in.Notes,
	}
	if err := s.store.AddAppointment(ctx, appt); err != nil {
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (s *schedulingService) Cancel(ctx context.Context, id string) error {
	return s.store.DeleteAppointment(ctx, id)
}

func (s *schedulingService) HasConflict(ctx context.Context, trainerID, start string) bool {
	return query.HasSchedulingConflict(s.store.Snapshot(), trainerID, start)
}

// --- shared name helpers ---

func nameOrUnknown(c domain.Client, ok bool) string {
	if !ok {
		return "Unknown"
	}
	return c.Name
}

func trainerNameOrUnknown(t domain.Trainer, ok bool) string {
	if !ok {
		return "Unknown"
	}
	return t.Name
}

func centerNameOrUnknown(c domain.Center, ok bool) string {
	if !ok {
		return "Unknown"
	}
	return c.Name
}
