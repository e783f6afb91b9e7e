package keywordrepository

import (
	"context"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/pkg/entity/model"
)

func (r *keywordRepository) Create(
	ctx context.Context,
	input model.CreateKeywordInput,
) (*model.Keyword, error) {
	kw, err := r.client.Keyword.Create().
		SetKeyword(input.Keyword).
		SetMonthlyPcSearch(input.MonthlyPcSearch).
		SetMonthlyMobileSearch(input.MonthlyMobileSearch).
		SetAvgMonthlySearch(input.MonthlyPcSearch + input.MonthlyMobileSearch).
		SetMonthlyClickPc(input.MonthlyClickPc).
		SetMonthlyClickMobile(input.MonthlyClickMobile).
		SetCtrPc(input.CtrPc).
		SetCtrMobile(input.CtrMobile).
		SetAdDepth(input.AdDepth).
		SetCompetition(input.Competition).
		SetSeed(input.Seed).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, model.NewInvalidParamError(err)
		}
		return nil, model.NewDBError(err)
	}
	return kw, nil
}

// Upsert inserts a related keyword or, when a concurrent writer beat us to
// the natural key, refreshes the existing row's metrics. The bool reports
// whether a new row was created.
func (r *keywordRepository) Upsert(
	ctx context.Context,
	seed string,
	kw *model.RelatedKeyword,
) (*model.Keyword, bool, error) {
	created, err := r.client.Keyword.Create().
		SetKeyword(kw.Keyword).
		SetMonthlyPcSearch(kw.MonthlyPcSearch).
		SetMonthlyMobileSearch(kw.MonthlyMobileSearch).
		SetAvgMonthlySearch(kw.AvgMonthlySearch).
		SetMonthlyClickPc(kw.MonthlyClickPc).
		SetMonthlyClickMobile(kw.MonthlyClickMobile).
		SetCtrPc(kw.CtrPc).
		SetCtrMobile(kw.CtrMobile).
		SetAdDepth(kw.AdDepth).
		SetCompetition(kw.Competition).
		SetSeed(seed).
		Save(ctx)
	if err == nil {
		return created, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, model.NewDBError(err)
	}

	existing, gerr := r.GetByText(ctx, kw.Keyword)
	if gerr != nil {
		return nil, false, gerr
	}
	updated, uerr := r.UpdateMetrics(ctx, existing.ID, kw)
	if uerr != nil {
		return nil, false, uerr
	}
	return updated, false, nil
}
