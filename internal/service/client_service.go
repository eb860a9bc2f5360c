package service

import (
	"context"
	"fmt"
	"time"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/store"
)

// ClientDetails is a client enriched with resolved names for list and detail
// views. Plan ids that no longer resolve keep their slot with an empty title.
type ClientDetails struct {
	domain.Client
	CenterName   string   `json:"centerName"`
	TrainerNames []string `json:"trainerNames"`
	PlanTitles   []string `json:"planTitles"`
}

// RegisterClientInput is the intake form. Metrics and the record lists are
// defaulted here; the store requires them present.
type RegisterClientInput struct {
	Name     string
	CenterID string
	Age      int
	Phone    string
}

type ClientService interface {
	List(ctx context.Context) []ClientDetails
	Get(ctx context.Context, id string) (ClientDetails, error)

	// Register creates a client with a fresh id and empty record lists.
	Register(ctx context.Context, in RegisterClientInput) (domain.Client, error)

	// LogProgress appends a progress note; an empty date defaults to today.
	// The client's metrics weight is overwritten with the logged weight.
	LogProgress(ctx context.Context, clientID, date, note string, weightKg float64) error
}

type clientService struct {
	store *store.Store
}

func NewClientService(st *store.Store) ClientService {
	return &clientService{store: st}
}

func (s *clientService) List(ctx context.Context) []ClientDetails {
	data := s.store.Snapshot()
	out := make([]ClientDetails, 0, len(data.Clients))
	for _, c := range data.Clients {
		out = append(out, enrichClient(data, c))
	}
	return out
}

func (s *clientService) Get(ctx context.Context, id string) (ClientDetails, error) {
	data := s.store.Snapshot()
	c, ok := data.FindClient(id)
	if !ok {
		return ClientDetails{}, fmt.Errorf("%w: client %q", store.ErrNotFound, id)
	}
	return enrichClient(data, c), nil
}

func (s *clientService) Register(ctx context.Context, in RegisterClientInput) (domain.Client, error) {
	client := domain.Client{
		ID:        domain.NewClientID(),
		Name:      in.Name,
		CenterID:  in.CenterID,
		Age:       in.Age,
		Phone:     in.Phone,
		Metrics:   domain.Metrics{},
		Trainers:  []string{},
		Plans:     []string{},
		Medicines: []domain.Medicine{},
		Progress:  []domain.ProgressLog{},
	}
	if err := s.store.AddClient(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (s *clientService) LogProgress(ctx context.Context, clientID, date, note string, weightKg float64) error {
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	return s.store.AddProgress(ctx, clientID, domain.ProgressLog{
		Date:     date,
		Note:     note,
		WeightKg: weightKg,
	})
}

func enrichClient(data domain.AppData, c domain.Client) ClientDetails {
	d := ClientDetails{
		Client:       c,
		CenterName:   centerNameOrUnknown(data.FindCenter(c.CenterID)),
		TrainerNames: make([]string, 0, len(c.Trainers)),
		PlanTitles:   make([]string, 0, len(c.Plans)),
	}
	for _, tid := range c.Trainers {
		d.TrainerNames = append(d.TrainerNames, trainerNameOrUnknown(data.FindTrainer(tid)))
	}
	for _, pid := range c.Plans {
		if p, ok := data.FindPlan(pid); ok {
			d.PlanTitles = append(d.PlanTitles, p.Title)
		} else {
			d.PlanTitles = append(d.PlanTitles, "")
		}
	}
	return d
}
