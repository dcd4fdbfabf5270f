package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/resource-api/internal/model"
	"github.com/rs/zerolog"
)

// BulkStore is what seeding needs on top of the single-document operations.
type BulkStore interface {
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, fields []model.ResourceFields) ([]model.Resource, error)
}

// SeedService loads a batch of resources into an empty or existing collection.
type SeedService struct {
	logger *zerolog.Logger
	store  BulkStore
}

func NewSeedService(logger *zerolog.Logger, store BulkStore) *SeedService {
	return &SeedService{logger: logger, store: store}
}

// Seed validates every entry first, so a bad file changes nothing.
// Unless keep is set, existing documents are removed before the insert.
func (s *SeedService) Seed(ctx context.Context, resources []model.ResourceFields, keep bool) ([]model.Resource, error) {
	for i := range resources {
		if err := resources[i].Validate(); err != nil {
			return nil, fmt.Errorf("seed entry %d (%q): %w", i, resources[i].Title, err)
		}
	}

	if !keep {
		deleted, err := s.store.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("clear resources: %w", err)
		}
		s.logger.Info().Int64("deleted", deleted).Msg("cleared existing resources")
	}

	created, err := s.store.InsertMany(ctx, resources)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("inserted", len(created)).Msg("seeded resources")
	return created, nil
}
