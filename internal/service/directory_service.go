package service

import (
	"context"

	"dhanbad/wellness-admin/internal/domain"
	"dhanbad/wellness-admin/internal/store"
)

// TrainerDetails is a trainer with the center name resolved.
type TrainerDetails struct {
	domain.Trainer
	CenterName string `json:"centerName"`
}

// DirectoryService serves the read-only center and trainer listings. The
// seed dataset is the only source of these collections; there are no
// mutation commands for them.
type DirectoryService interface {
	Centers(ctx context.Context) []domain.Center
	Trainers(ctx context.Context) []TrainerDetails
}

type directoryService struct {
	store *store.Store
}

func NewDirectoryService(st *store.Store) DirectoryService {
	return &directoryService{store: st}
}

func (s *directoryService) Centers(ctx context.Context) []domain.Center {
	return s.store.Snapshot().Centers
}

func (s *directoryService) Trainers(ctx context.Context) []TrainerDetails {
	data := s.store.Snapshot()
	out := make([]TrainerDetails, 0, len(data.Trainers))
	for _, t := range data.Trainers {
		out = append(out, TrainerDetails{
			Trainer:    t,
			CenterName: centerNameOrUnknown(data.FindCenter(t.CenterID)),
		})
	}
	return out
}
