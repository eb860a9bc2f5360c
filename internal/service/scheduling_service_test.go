package service_test

import (
	"context"
	"strings"
	"testing"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/service"
	"dhanbad/wellness-admin/internal/storage"
	"dhanbad/wellness-admin/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), storage.NewMemoryStorage(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestListAppointmentsSortedAndEnriched(t *testing.T) {
	svc := service.NewSchedulingService(newTestStore(t))

	appts := svc.ListAppointments(context.Background())
	require.Len(t, appts, 8)
	for i := 1; i < len(appts); i++ {
		assert.LessOrEqual(t, appts[i-1].Start, appts[i].Start)
	}
	assert.Equal(t, "A1", appts[0].ID)
	assert.Equal(t, "Suresh Gupta", appts[0].ClientName)
	assert.Equal(t, "Anita Sharma", appts[0].TrainerName)
	assert.Equal(t, "Dhanbad Wellness — Main", appts[0].CenterName)
}

func TestScheduleAssignsID(t *testing.T) {
	svc := service.NewSchedulingService(newTestStore(t))

	appt, err := svc.Schedule(context.Background(), service.ScheduleInput{
		CenterID: "C1", TrainerID: "T1", ClientID: "CL2",
		Start: "2025-12-01T10:00:00", End: "2025-12-01T10:30:00",
		Type: domain.AppointmentFollowUp, Notes: "routine",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(appt.ID, "A"))
	assert.Len(t, svc.ListAppointments(context.Background()), 9)
}

func TestScheduleRejectsConflict(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewSchedulingService(st)
	ctx := context.Background()

	// A1 already books T1 at this exact start.
	_, err := svc.Schedule(ctx, service.ScheduleInput{
		CenterID: "C1", TrainerID: "T1", ClientID: "CL2",
		Start: "2025-11-22T09:00:00", End: "2025-11-22T09:30:00",
		Type: domain.AppointmentInitial,
	})
	assert.ErrorIs(t, err, service.ErrScheduleConflict)
	assert.Len(t, st.Snapshot().Appointments, 8)

	// A different trainer at the same instant is fine.
	_, err = svc.Schedule(ctx, service.ScheduleInput{
		CenterID: "C2", TrainerID: "T2", ClientID: "CL2",
		Start: "2025-11-22T09:00:00", End: "2025-11-22T09:30:00",
		Type: domain.AppointmentInitial,
	})
	assert.NoError(t, err)
}

func TestCancel(t *testing.T) {
	svc := service.NewSchedulingService(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, svc.Cancel(ctx, "A3"))
	assert.Len(t, svc.ListAppointments(ctx), 7)

	err := svc.Cancel(ctx, "A3")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHasConflict(t *testing.T) {
	svc := service.NewSchedulingService(newTestStore(t))
	ctx := context.Background()

	assert.True(t, svc.HasConflict(ctx, "T1", "2025-11-22T09:00:00"))
	assert.False(t, svc.HasConflict(ctx, "T1", "2025-11-22T09:15:00"))
}

func TestDanglingReferencesRenderUnknown(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewSchedulingService(st)
	ctx := context.Background()

	_, err := svc.Schedule(ctx, service.ScheduleInput{
		CenterID: "C9", TrainerID: "T9", ClientID: "CL9",
		Start: "2025-12-05T09:00:00", End: "2025-12-05T09:30:00",
		Type: domain.AppointmentTeleconsult,
	})
	require.NoError(t, err)

	appts := svc.ListAppointments(ctx)
	last := appts[len(appts)-1]
	assert.Equal(t, "Unknown", last.ClientName)
	assert.Equal(t, "Unknown", last.TrainerName)
	assert.Equal(t, "Unknown", last.CenterName)
}
