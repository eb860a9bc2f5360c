package service

import (
	"context"
	"time"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/export"
	"dhanbad/wellness-admin/internal/query"
	"dhanbad/wellness-admin/internal/store"
)

// RevenueReport is the finance reports tab: totals plus the two groupings
// behind the charts.
type RevenueReport struct {
	TotalRevenue      float64                          `json:"totalRevenue"`
	OutstandingAmount float64                          `json:"outstandingAmount"`
	ByMonth           []query.MonthRevenue             `json:"byMonth"`
	ByMethod          map[domain.PaymentMethod]float64 `json:"byMethod"`
}

// DashboardReport is the overview screen: headline numbers and the trainer
// workload chart.
type DashboardReport struct {
	query.DashboardStats
	TrainerWorkload []query.TrainerLoad `json:"trainerWorkload"`
}

type ReportService interface {
	Dashboard(ctx context.Context) DashboardReport
	Revenue(ctx context.Context) RevenueReport

	// ClientRegistryCSV and AppointmentsCSV produce the downloadable
	// exports consumed outside the store.
	ClientRegistryCSV(ctx context.Context) []byte
	AppointmentsCSV(ctx context.Context) []byte
}

type reportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) ReportService {
	return &reportService{store: st}
}

func (s *reportService) Dashboard(ctx context.Context) DashboardReport {
	data := s.store.Snapshot()
	today := time.Now().Format(domain.DateLayout)
	return DashboardReport{
		DashboardStats:  query.Stats(data, today),
		TrainerWorkload: query.AppointmentsByTrainer(data),
	}
}

func (s *reportService) Revenue(ctx context.Context) RevenueReport {
	data := s.store.Snapshot()
	return RevenueReport{
		TotalRevenue:      query.TotalRevenue(data),
		OutstandingAmount: query.OutstandingAmount(data),
		ByMonth:           query.RevenueByMonth(data),
		ByMethod:          query.RevenueByMethod(data),
	}
}

func (s *reportService) ClientRegistryCSV(ctx context.Context) []byte {
	return export.WriteCSV(export.ClientRegistry(s.store.Snapshot()))
}

func (s *reportService) AppointmentsCSV(ctx context.Context) []byte {
	return export.WriteCSV(export.Appointments(s.store.Snapshot()))
}
