package collectionlogrepository

import (
	"context"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/pkg/entity/model"
	ur "kwlab-go-backend/pkg/usecase/repository"
)

const defaultListLimit = 50

type collectionLogRepository struct {
	client *ent.Client
}

func NewCollectionLogRepository(client *ent.Client) ur.CollectionLog {
	return &collectionLogRepository{client}
}

func (r *collectionLogRepository) Create(ctx context.Context, log *model.CollectionLog) (*model.CollectionLog, error) {
	create := r.client.CollectionLog.Create().
		SetJobName(log.JobName).
		SetStatus(log.Status).
		SetStartedAt(log.StartedAt).
		SetDurationSeconds(log.DurationSeconds).
		SetTotalProcessed(log.TotalProcessed).
		SetNewCount(log.NewCount).
		SetUpdatedCount(log.UpdatedCount).
		SetSkippedCount(log.SkippedCount).
		SetFailedCount(log.FailedCount).
		SetAPICallsMade(log.APICallsMade).
		SetNillableCompletedAt(log.CompletedAt).
		SetNillableErrorSummary(log.ErrorSummary)

	created, err := create.Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return created, nil
}

func (r *collectionLogRepository) List(ctx context.Context, limit int) ([]*model.CollectionLog, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	logs, err := r.client.CollectionLog.Query().
		Order(ent.Desc(collectionlog.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return logs, nil
}

func (r *collectionLogRepository) GetLatest(ctx context.Context, jobName string) (*model.CollectionLog, error) {
	log, err := r.client.CollectionLog.Query().
		Where(collectionlog.JobNameEQ(jobName)).
		Order(ent.Desc(collectionlog.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err)
		}
		return nil, model.NewDBError(err)
	}
	return log, nil
}
