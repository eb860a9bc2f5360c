package service_test

import (
	"context"
	"strings"
	"testing"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/service"
	"dhanbad/wellness-admin/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanOverview(t *testing.T) {
	svc := service.NewPlanService(newTestStore(t))

	ov := svc.Overview(context.Background())
	require.Len(t, ov.Plans, 3)
	assert.Equal(t, 71, ov.CoveragePercent)

	// P1: 12000 at 10% off.
	assert.Equal(t, "P1", ov.Plans[0].ID)
	assert.Equal(t, float64(10800), ov.Plans[0].EffectivePrice)
	// P2 has no discount.
	assert.Equal(t, float64(8500), ov.Plans[1].EffectivePrice)
}

func TestPlanCreate(t *testing.T) {
	svc := service.NewPlanService(newTestStore(t))

	plan, err := svc.Create(context.Background(), service.CreatePlanInput{
		Title: "Diabetes Care — 10 weeks", Type: domain.PlanDiet,
		Diet: "Low GI meals", StartDate: "2025-12-01",
		DurationWeeks: 10, Price: 9000, Discount: 5,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plan.ID, "P"))

	ov := svc.Overview(context.Background())
	require.Len(t, ov.Plans, 4)
	assert.Equal(t, float64(8550), ov.Plans[3].EffectivePrice)
}

func TestPlanDelete(t *testing.T) {
	st := newTestStore(t)
	svc := service.NewPlanService(st)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "P2"))
	assert.Len(t, svc.Overview(ctx).Plans, 2)

	err := svc.Delete(ctx, "P2")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// CL3 keeps its reference to the deleted template.
	c, _ := st.Snapshot().FindClient("CL3")
	assert.Contains(t, c.Plans, "P2")
}

func TestReportServiceRevenue(t *testing.T) {
	svc := service.NewReportService(newTestStore(t))

	rep := svc.Revenue(context.Background())
	assert.Equal(t, float64(29300), rep.TotalRevenue)
	assert.Equal(t, float64(20050), rep.OutstandingAmount)
	require.Len(t, rep.ByMonth, 1)
	assert.Equal(t, float64(29300), rep.ByMonth[0].Amount)
	assert.Equal(t, float64(13000), rep.ByMethod[domain.MethodUPI])
}

func TestReportServiceDashboard(t *testing.T) {
	svc := service.NewReportService(newTestStore(t))

	rep := svc.Dashboard(context.Background())
	assert.Equal(t, 7, rep.TotalClients)
	assert.Equal(t, 5, rep.ActiveCenters)
	assert.Equal(t, 5, rep.ActivePlans)
	require.Len(t, rep.TrainerWorkload, 4)
	assert.Equal(t, 3, rep.TrainerWorkload[0].Sessions)
}

func TestReportServiceCSVExports(t *testing.T) {
	svc := service.NewReportService(newTestStore(t))
	ctx := context.Background()

	clients := string(svc.ClientRegistryCSV(ctx))
	assert.True(t, strings.HasPrefix(clients, "ID,Name,Phone,Center,Weight,Conditions\n"))
	assert.Contains(t, clients, `"CL1"`)

	appts := string(svc.AppointmentsCSV(ctx))
	assert.True(t, strings.HasPrefix(appts, "id,centerId,trainerId,clientId,start,end,type,notes\n"))
	assert.Contains(t, appts, `"A8"`)
}
