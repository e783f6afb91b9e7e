package doccountrepository

import (
	"context"
	"time"

	"entgo.io/ent/dialect/sql"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/ent/keyword"
	"kwlab-go-backend/ent/keyworddoccount"
	"kwlab-go-backend/ent/predicate"
	"kwlab-go-backend/pkg/entity/model"
	ur "kwlab-go-backend/pkg/usecase/repository"
)

type docCountRepository struct {
	client *ent.Client
}

func NewDocCountRepository(client *ent.Client) ur.DocCount {
	return &docCountRepository{client}
}

func (r *docCountRepository) GetByKeyword(ctx context.Context, kw string) (*model.KeywordDocCount, error) {
	dc, err := r.client.KeywordDocCount.Query().
		Where(keyworddoccount.KeywordEQ(kw)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err)
		}
		return nil, model.NewDBError(err)
	}
	return dc, nil
}

// Upsert writes one row per keyword, replacing all channel totals on
// conflict. A concurrent insert of the same keyword resolves to an update.
func (r *docCountRepository) Upsert(ctx context.Context, counts *model.DocCounts) (*model.KeywordDocCount, error) {
	created, err := r.client.KeywordDocCount.Create().
		SetKeyword(counts.Keyword).
		SetBlogTotal(counts.BlogTotal).
		SetCafeTotal(counts.CafeTotal).
		SetWebTotal(counts.WebTotal).
		SetNewsTotal(counts.NewsTotal).
		SetCollectedAt(counts.CollectedAt).
		Save(ctx)
	if err == nil {
		return created, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, model.NewDBError(err)
	}

	existing, gerr := r.GetByKeyword(ctx, counts.Keyword)
	if gerr != nil {
		return nil, gerr
	}
	updated, uerr := r.client.KeywordDocCount.UpdateOneID(existing.ID).
		SetBlogTotal(counts.BlogTotal).
		SetCafeTotal(counts.CafeTotal).
		SetWebTotal(counts.WebTotal).
		SetNewsTotal(counts.NewsTotal).
		SetCollectedAt(counts.CollectedAt).
		Save(ctx)
	if uerr != nil {
		return nil, model.NewDBError(uerr)
	}
	return updated, nil
}

// ListStaleKeywords returns keyword texts that have no document-count row
// at all or whose row is older than the window.
func (r *docCountRepository) ListStaleKeywords(
	ctx context.Context,
	limit int,
	window time.Duration,
) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	cutoff := time.Now().Add(-window)

	noFreshCount := predicate.Keyword(func(s *sql.Selector) {
		t := sql.Table(keyworddoccount.Table)
		s.Where(sql.NotExists(
			sql.Select().From(t).Where(sql.And(
				sql.ColumnsEQ(t.C(keyworddoccount.FieldKeyword), s.C(keyword.FieldKeyword)),
				sql.GTE(t.C(keyworddoccount.FieldCollectedAt), cutoff),
			)),
		))
	})

	texts, err := r.client.Keyword.Query().
		Where(noFreshCount).
		Order(ent.Desc(keyword.FieldAvgMonthlySearch)).
		Limit(limit).
		Select(keyword.FieldKeyword).
		Strings(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return texts, nil
}
