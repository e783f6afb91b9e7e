package repository

import (
	"context"
	"time"

	"kwlab-go-backend/pkg/entity/model"
)

// CronJobConfig is the persistence contract of scheduled-job settings.
type CronJobConfig interface {
	GetByName(ctx context.Context, name string) (*model.CronJobConfig, error)
	List(ctx context.Context) ([]*model.CronJobConfig, error)
	Ensure(ctx context.Context, defaults *model.CronJobConfig) error
	Update(ctx context.Context, name string, input model.UpdateCronJobConfigInput) (*model.CronJobConfig, error)
	Toggle(ctx context.Context, name string) (*model.CronJobConfig, error)
	MarkRun(ctx context.Context, name string, lastRun time.Time, nextRun *time.Time) error
}
