package seedusagerepository

import (
	"context"
	"time"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/ent/seedusage"
	"kwlab-go-backend/pkg/entity/model"
	ur "kwlab-go-backend/pkg/usecase/repository"
)

type seedUsageRepository struct {
	client *ent.Client
}

func NewSeedUsageRepository(client *ent.Client) ur.SeedUsage {
	return &seedUsageRepository{client}
}

func (r *seedUsageRepository) GetBySeed(ctx context.Context, seed string) (*model.SeedUsage, error) {
	su, err := r.client.SeedUsage.Query().
		Where(seedusage.SeedEQ(seed)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err)
		}
		return nil, model.NewDBError(err)
	}
	return su, nil
}

// Ensure registers a seed with zero usage. A concurrent insert of the same
// seed is not an error.
func (r *seedUsageRepository) Ensure(ctx context.Context, seed string) error {
	_, err := r.client.SeedUsage.Create().
		SetSeed(seed).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return model.NewDBError(err)
	}
	return nil
}

// Touch bumps the usage counter and stamps last_used_at, creating the row
// when the seed is unknown.
func (r *seedUsageRepository) Touch(ctx context.Context, seed string) error {
	now := time.Now()
	n, err := r.client.SeedUsage.Update().
		Where(seedusage.SeedEQ(seed)).
		AddUsageCount(1).
		SetLastUsedAt(now).
		Save(ctx)
	if err != nil {
		return model.NewDBError(err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.SeedUsage.Create().
		SetSeed(seed).
		SetUsageCount(1).
		SetLastUsedAt(now).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return model.NewDBError(err)
	}
	return nil
}

// ListCandidates returns seeds eligible for expansion: never-used seeds
// first (oldest registration first), then the least recently used.
func (r *seedUsageRepository) ListCandidates(
	ctx context.Context,
	limit int,
	window time.Duration,
) ([]*model.SeedUsage, error) {
	if limit <= 0 {
		return nil, nil
	}

	unused, err := r.client.SeedUsage.Query().
		Where(seedusage.LastUsedAtIsNil()).
		Order(ent.Asc(seedusage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	if len(unused) >= limit {
		return unused, nil
	}

	cutoff := time.Now().Add(-window)
	stale, err := r.client.SeedUsage.Query().
		Where(
			seedusage.LastUsedAtNotNil(),
			seedusage.LastUsedAtLT(cutoff),
		).
		Order(ent.Asc(seedusage.FieldLastUsedAt)).
		Limit(limit - len(unused)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return append(unused, stale...), nil
}

func (r *seedUsageRepository) CountCandidates(ctx context.Context, window time.Duration) (int, error) {
	cutoff := time.Now().Add(-window)
	n, err := r.client.SeedUsage.Query().
		Where(
			seedusage.Or(
				seedusage.LastUsedAtIsNil(),
				seedusage.LastUsedAtLT(cutoff),
			),
		).
		Count(ctx)
	if err != nil {
		return 0, model.NewDBError(err)
	}
	return n, nil
}
