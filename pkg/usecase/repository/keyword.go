package repository

import (
	"context"

	"kwlab-go-backend/pkg/entity/model"
)

// Keyword is the persistence contract of the keyword table.
type Keyword interface {
	GetByText(ctx context.Context, text string) (*model.Keyword, error)
	Get(ctx context.Context, id model.ID) (*model.Keyword, error)
	Create(ctx context.Context, input model.CreateKeywordInput) (*model.Keyword, error)
	UpdateMetrics(ctx context.Context, id model.ID, kw *model.RelatedKeyword) (*model.Keyword, error)
	Upsert(ctx context.Context, seed string, kw *model.RelatedKeyword) (*model.Keyword, bool, error)
	List(ctx context.Context, input model.ListKeywordsInput) (*model.KeywordPage, error)
	AllForExport(ctx context.Context) ([]*model.Keyword, error)
	Insights(ctx context.Context) (*model.KeywordInsights, error)
	Delete(ctx context.Context, id model.ID) error
}
