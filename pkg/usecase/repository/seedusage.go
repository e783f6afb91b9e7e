package repository

import (
	"context"
	"time"

	"kwlab-go-backend/pkg/entity/model"
)

// SeedUsage is the persistence contract of the seed-usage table. A row
// exists for every known seed; last_used_at nil means never expanded.
type SeedUsage interface {
	GetBySeed(ctx context.Context, seed string) (*model.SeedUsage, error)
	Ensure(ctx context.Context, seed string) error
	Touch(ctx context.Context, seed string) error
	ListCandidates(ctx context.Context, limit int, window time.Duration) ([]*model.SeedUsage, error)
	CountCandidates(ctx context.Context, window time.Duration) (int, error)
}
