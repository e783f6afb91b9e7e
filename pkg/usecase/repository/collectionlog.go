package repository

import (
	"context"

	"kwlab-go-backend/pkg/entity/model"
)

// CollectionLog is the persistence contract of collection run history.
type CollectionLog interface {
	Create(ctx context.Context, log *model.CollectionLog) (*model.CollectionLog, error)
	List(ctx context.Context, limit int) ([]*model.CollectionLog, error)
	GetLatest(ctx context.Context, jobName string) (*model.CollectionLog, error)
}
