package repository

import (
	"context"
	"time"

	"kwlab-go-backend/pkg/entity/model"
)

// DocCount is the persistence contract of the per-channel document totals.
type DocCount interface {
	GetByKeyword(ctx context.Context, keyword string) (*model.KeywordDocCount, error)
	Upsert(ctx context.Context, counts *model.DocCounts) (*model.KeywordDocCount, error)
	ListStaleKeywords(ctx context.Context, limit int, window time.Duration) ([]string, error)
}
