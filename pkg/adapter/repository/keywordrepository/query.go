package keywordrepository

import (
	"context"
	"fmt"
	"time"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/pkg/entity/model"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
	topByVolumeSize = 10
)

func (r *keywordRepository) Get(ctx context.Context, id model.ID) (*model.Keyword, error) {
	kw, err := r.client.Keyword.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err)
		}
		return nil, model.NewDBError(err)
	}
	return kw, nil
}

func (r *keywordRepository) GetByText(ctx context.Context, text string) (*model.Keyword, error) {
	kw, err := r.client.Keyword.Query().
		Where(keyword.KeywordEQ(text)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err)
		}
		return nil, model.NewDBError(err)
	}
	return kw, nil
}

func (r *keywordRepository) List(
	ctx context.Context,
	input model.ListKeywordsInput,
) (*model.KeywordPage, error) {
	q := r.client.Keyword.Query()

	if input.Query != "" {
		q = q.Where(keyword.KeywordContainsFold(input.Query))
	}
	if input.Competition != "" {
		q = q.Where(keyword.CompetitionEQ(input.Competition))
	}
	if input.MinSearch > 0 {
		q = q.Where(keyword.AvgMonthlySearchGTE(input.MinSearch))
	}
	if input.Seed != "" {
		q = q.Where(keyword.SeedEQ(input.Seed))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	field := keyword.FieldCreatedAt
	switch input.SortBy {
	case "keyword":
		field = keyword.FieldKeyword
	case "avg_monthly_search":
		field = keyword.FieldAvgMonthlySearch
	case "created_at", "":
	default:
		return nil, model.NewInvalidParamError(fmt.Errorf("unknown sort field %q", input.SortBy))
	}
	order := ent.Desc(field)
	if input.SortDir == "asc" {
		order = ent.Asc(field)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	items, err := q.Order(order).Offset(offset).Limit(limit).All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return &model.KeywordPage{Items: items, Total: total}, nil
}

func (r *keywordRepository) AllForExport(ctx context.Context) ([]*model.Keyword, error) {
	items, err := r.client.Keyword.Query().
		Order(ent.Asc(keyword.FieldKeyword)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return items, nil
}

func (r *keywordRepository) Insights(ctx context.Context) (*model.KeywordInsights, error) {
	total, err := r.client.Keyword.Query().Count(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := r.client.Keyword.Query().
		Where(keyword.CreatedAtGTE(midnight)).
		Count(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	avg := 0.0
	if total > 0 {
		avg, err = r.client.Keyword.Query().
			Aggregate(ent.Mean(keyword.FieldAvgMonthlySearch)).
			Float64(ctx)
		if err != nil {
			return nil, model.NewDBError(err)
		}
	}

	var grouped []struct {
		Competition string `json:"competition"`
		Count       int    `json:"count"`
	}
	err = r.client.Keyword.Query().
		GroupBy(keyword.FieldCompetition).
		Aggregate(ent.Count()).
		Scan(ctx, &grouped)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	breakdown := make(map[string]int, len(grouped))
	for _, g := range grouped {
		breakdown[g.Competition] = g.Count
	}

	top, err := r.client.Keyword.Query().
		Order(ent.Desc(keyword.FieldAvgMonthlySearch)).
		Limit(topByVolumeSize).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	return &model.KeywordInsights{
		TotalKeywords:        total,
		CollectedToday:       today,
		AvgMonthlySearch:     avg,
		CompetitionBreakdown: breakdown,
		TopByVolume:          top,
	}, nil
}
