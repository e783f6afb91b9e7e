package cronjobconfigrepository

import (
	"context"
	"time"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/pkg/entity/model"
	ur "kwlab-go-backend/pkg/usecase/repository"
)

type cronJobConfigRepository struct {
	client *ent.Client
}

func NewCronJobConfigRepository(client *ent.Client) ur.CronJobConfig {
	return &cronJobConfigRepository{client}
}

func (r *cronJobConfigRepository) GetByName(ctx context.Context, name string) (*model.CronJobConfig, error) {
	cfg, err := r.client.CronJobConfig.Query().
		Where(cronjobconfig.JobNameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, model.NewNotFoundError(err)
		}
		return nil, model.NewDBError(err)
	}
	return cfg, nil
}

func (r *cronJobConfigRepository) List(ctx context.Context) ([]*model.CronJobConfig, error) {
	cfgs, err := r.client.CronJobConfig.Query().
		Order(ent.Asc(cronjobconfig.FieldJobName)).
		All(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return cfgs, nil
}

// Ensure inserts the default row for a job when none exists yet. Existing
// rows keep their operator-tuned values.
func (r *cronJobConfigRepository) Ensure(ctx context.Context, defaults *model.CronJobConfig) error {
	_, err := r.client.CronJobConfig.Create().
		SetJobName(defaults.JobName).
		SetJobType(defaults.JobType).
		SetSchedule(defaults.Schedule).
		SetEnabled(defaults.Enabled).
		SetBatchSize(defaults.BatchSize).
		SetConcurrency(defaults.Concurrency).
		SetAdminEmail(defaults.AdminEmail).
		SetRespectQuota(defaults.RespectQuota).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return model.NewDBError(err)
	}
	return nil
}

func (r *cronJobConfigRepository) Update(
	ctx context.Context,
	name string,
	input model.UpdateCronJobConfigInput,
) (*model.CronJobConfig, error) {
	existing, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	u := r.client.CronJobConfig.UpdateOneID(existing.ID)
	if input.Schedule != nil {
		u = u.SetSchedule(*input.Schedule)
	}
	if input.Enabled != nil {
		u = u.SetEnabled(*input.Enabled)
	}
	if input.BatchSize != nil {
		u = u.SetBatchSize(*input.BatchSize)
	}
	if input.Concurrency != nil {
		u = u.SetConcurrency(*input.Concurrency)
	}
	if input.AdminEmail != nil {
		u = u.SetAdminEmail(*input.AdminEmail)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, model.NewInvalidParamError(err)
		}
		return nil, model.NewDBError(err)
	}
	return updated, nil
}

func (r *cronJobConfigRepository) Toggle(ctx context.Context, name string) (*model.CronJobConfig, error) {
	existing, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.CronJobConfig.UpdateOneID(existing.ID).
		SetEnabled(!existing.Enabled).
		Save(ctx)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return updated, nil
}

func (r *cronJobConfigRepository) MarkRun(ctx context.Context, name string, lastRun time.Time, nextRun *time.Time) error {
	n, err := r.client.CronJobConfig.Update().
		Where(cronjobconfig.JobNameEQ(name)).
		SetLastRunAt(lastRun).
		SetNillableNextRunAt(nextRun).
		Save(ctx)
	if err != nil {
		return model.NewDBError(err)
	}
	if n == 0 {
		return model.NewNotFoundError(nil)
	}
	return nil
}
