package service

import (
	"context"
	"time"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/query"
	"dhanbad/wellness-admin/internal/store"
)

// PlanDetails is a plan with its discounted price pre-computed for display.
type PlanDetails struct {
	domain.Plan
	EffectivePrice float64 `json:"effectivePrice"`
}

// PlansOverview is the plan screen: all templates plus how much of the
// client base holds at least one plan.
type PlansOverview struct {
	Plans           []PlanDetails `json:"plans"`
	CoveragePercent int           `json:"coveragePercent"`
}

// CreatePlanInput is the plan template form.
type CreatePlanInput struct {
	Title         string
	Type          domain.PlanType
	Yoga          string
	Diet          string
	StartDate     string
	DurationWeeks int
	Price         float64
	Discount      float64
}

type PlanService interface {
	Overview(ctx context.Context) PlansOverview
	Create(ctx context.Context, in CreatePlanInput) (domain.Plan, error)

	// Delete removes the template only. Clients keep any reference to the
	// deleted id in their plans list.
	Delete(ctx context.Context, id string) error
}

type planService struct {
	store *store.Store
}

func NewPlanService(st *store.Store) PlanService {
	return &planService{store: st}
}

func (s *planService) Overview(ctx context.Context) PlansOverview {
	data := s.store.Snapshot()
	out := PlansOverview{
		Plans:           make([]PlanDetails, 0, len(data.Plans)),
		CoveragePercent: query.ClientCoveragePercent(data),
	}
	for _, p := range data.Plans {
		out.Plans = append(out.Plans, PlanDetails{Plan: p, EffectivePrice: p.EffectivePrice()})
	}
	return out
}

func (s *planService) Create(ctx context.Context, in CreatePlanInput) (domain.Plan, error) {
	startDate := in.StartDate
	if startDate == "" {
		startDate = time.Now().Format(domain.DateLayout)
	}
	plan := domain.Plan{
		ID:            domain.NewPlanID(),
		Title:         in.Title,
		Type:          in.Type,
		Yoga:          in.Yoga,
		Diet:          in.Diet,
		StartDate:     startDate,
		DurationWeeks: in.DurationWeeks,
		Price:         in.Price,
		Discount:      in.Discount,
	}
	if err := s.store.AddPlan(ctx, plan); err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.store.DeletePlan(ctx, id)
}
