package keywordrepository

import (
	"context"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/pkg/entity/model"
)

func (r *keywordRepository) UpdateMetrics(
	ctx context.Context,
	id model.ID,
	kw *model.RelatedKeyword,
) (*model.Keyword, error) {
	u, err := r.client.Keyword.UpdateOneID(id).
		SetMonthlyPcSearch(kw.MonthlyPcSearch).
		SetMonthlyMobileSearch(kw.MonthlyMobileSearch).
		SetAvgMonthlySearch(kw.AvgMonthlySearch).
		SetMonthlyClickPc(kw.MonthlyClickPc).
		SetMonthlyClickMobile(kw.MonthlyClickMobile).
		SetCtrPc(kw.CtrPc).
		SetCtrMobile(kw.CtrMobile).
		SetAdDepth(kw.AdDepth).
		SetCompetition(kw.Competition).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err)
		}
		return nil, model.NewDBError(err)
	}
	return u, nil
}

func (r *keywordRepository) Delete(ctx context.Context, id model.ID) error {
	err := r.client.Keyword.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return model.NewNotFoundError(err)
		}
		return model.NewDBError(err)
	}
	return nil
}
