// Package scheduler drives the recurring jobs: scheduled collection
// batches, daily credential usage resets, document-count backfill and
// job-registry cleanup.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"kwlab-go-backend/config"
	"kwlab-go-backend/ent/cronjobconfig"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/repository"
	"kwlab-go-backend/pkg/usecase/usecase/collector"
	"kwlab-go-backend/pkg/usecase/usecase/doccount"
	"kwlab-go-backend/pkg/usecase/usecase/jobs"
	"kwlab-go-backend/pkg/usecase/usecase/keypool"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job names. One CronJobConfig row exists per name.
const (
	JobAutoCollect      = "auto_collect"
	JobUsageReset       = "usage_reset"
	JobDocCountBackfill = "doc_count_backfill"
	JobJobCleanup       = "job_cleanup"
)

const jobRetention = 24 * time.Hour

// Scheduler manages cron jobs
type Scheduler struct {
	cron      *cron.Cron
	collector *collector.Collector
	docCount  *doccount.Service
	registry  *jobs.Registry
	pools     []*keypool.Pool
	cronRepo  repository.CronJobConfig
	logger    *zap.SugaredLogger
	entryIDs  map[string]cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(
	col *collector.Collector,
	docCount *doccount.Service,
	registry *jobs.Registry,
	cronRepo repository.CronJobConfig,
	logger *zap.SugaredLogger,
	pools ...*keypool.Pool,
) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		collector: col,
		docCount:  docCount,
		registry:  registry,
		pools:     pools,
		cronRepo:  cronRepo,
		logger:    logger,
		entryIDs:  make(map[string]cron.EntryID),
	}
}

// Start seeds missing default configs, registers every enabled job and
// starts the cron runner.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("starting cron scheduler")

	if err := s.initializeDefaultConfigs(ctx); err != nil {
		return fmt.Errorf("failed to initialize default configs: %w", err)
	}

	configs, err := s.cronRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cron jobs: %w", err)
	}

	for _, job := range configs {
		if !job.Enabled {
			continue
		}
		if err := s.registerJob(job); err != nil {
			s.logger.Warnw("failed to register job", "job", job.JobName, "error", err)
		}
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started")

	return nil
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping cron scheduler")
	cronCtx := s.cron.Stop()
	<-cronCtx.Done()
	s.logger.Info("cron scheduler stopped")
}

// registerJob registers a single cron job
func (s *Scheduler) registerJob(job *model.CronJobConfig) error {
	var run func()

	switch job.JobType {
	case cronjobconfig.JobTypeAutoCollect:
		batchSize, concurrency := job.BatchSize, job.Concurrency
		run = func() { s.runAutoCollect(context.Background(), batchSize, concurrency) }
	case cronjobconfig.JobTypeUsageReset:
		run = func() { s.runUsageReset(context.Background()) }
	case cronjobconfig.JobTypeDocCountBackfill:
		batchSize := job.BatchSize
		run = func() { s.runDocCountBackfill(context.Background(), batchSize) }
	case cronjobconfig.JobTypeJobCleanup:
		run = func() { s.runJobCleanup(context.Background()) }
	default:
		return fmt.Errorf("unknown job type: %s", job.JobType)
	}

	entryID, err := s.cron.AddFunc(job.Schedule, run)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.entryIDs[job.JobName] = entryID
	s.logger.Infow("registered job", "job", job.JobName, "schedule", job.Schedule)

	return nil
}

func (s *Scheduler) runAutoCollect(ctx context.Context, batchSize, concurrency int) {
	s.logger.Info("running scheduled collection batch")
	s.markRun(ctx, JobAutoCollect)

	res, err := s.collector.RunBatch(ctx, model.CollectBatchInput{
		Limit:      batchSize,
		Concurrent: concurrency,
	})
	if err != nil {
		s.logger.Errorw("scheduled collection batch failed", "error", err)
		return
	}

	s.logger.Infow("scheduled collection batch completed",
		"processed", res.Processed, "new", res.TotalNewKeywords, "remaining", res.Remaining)
}

func (s *Scheduler) runUsageReset(ctx context.Context) {
	s.logger.Info("running daily usage reset")
	s.markRun(ctx, JobUsageReset)

	for _, p := range s.pools {
		p.ResetDailyUsage()
	}

	s.logger.Info("daily usage reset completed")
}

func (s *Scheduler) runDocCountBackfill(ctx context.Context, batchSize int) {
	s.logger.Info("running doc count backfill")
	s.markRun(ctx, JobDocCountBackfill)

	processed, err := s.docCount.CollectMissing(ctx, batchSize, s.collector.Freshness())
	if err != nil {
		s.logger.Warnw("doc count backfill stopped early", "processed", processed, "error", err)
		return
	}

	s.logger.Infow("doc count backfill completed", "processed", processed)
}

func (s *Scheduler) runJobCleanup(ctx context.Context) {
	s.markRun(ctx, JobJobCleanup)
	s.registry.CleanupOldJobs(jobRetention)
}

// markRun stamps last_run_at and the next scheduled time for a job.
func (s *Scheduler) markRun(ctx context.Context, jobName string) {
	var next *time.Time
	if entryID, ok := s.entryIDs[jobName]; ok {
		if n := s.cron.Entry(entryID).Next; !n.IsZero() {
			next = &n
		}
	}
	if err := s.cronRepo.MarkRun(ctx, jobName, time.Now(), next); err != nil {
		s.logger.Warnw("failed to update last run time", "job", jobName, "error", err)
	}
}

// initializeDefaultConfigs creates missing cron job rows from config.
// Existing rows keep their operator-tuned values.
func (s *Scheduler) initializeDefaultConfigs(ctx context.Context) error {
	cfg := config.C

	batchSize := cfg.Cron.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	concurrency := cfg.Cron.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	defaults := []*model.CronJobConfig{
		{
			JobName:      JobAutoCollect,
			JobType:      cronjobconfig.JobTypeAutoCollect,
			Schedule:     cfg.Cron.AutoCollectSchedule,
			Enabled:      true,
			BatchSize:    batchSize,
			Concurrency:  concurrency,
			AdminEmail:   cfg.Email.AdminEmail,
			RespectQuota: true,
		},
		{
			JobName:      JobUsageReset,
			JobType:      cronjobconfig.JobTypeUsageReset,
			Schedule:     cfg.Cron.UsageResetSchedule,
			Enabled:      true,
			BatchSize:    1,
			Concurrency:  1,
			AdminEmail:   cfg.Email.AdminEmail,
			RespectQuota: false,
		},
		{
			JobName:      JobDocCountBackfill,
			JobType:      cronjobconfig.JobTypeDocCountBackfill,
			Schedule:     cfg.Cron.DocCountBackfillSchedule,
			Enabled:      true,
			BatchSize:    batchSize,
			Concurrency:  1,
			AdminEmail:   cfg.Email.AdminEmail,
			RespectQuota: true,
		},
		{
			JobName:      JobJobCleanup,
			JobType:      cronjobconfig.JobTypeJobCleanup,
			Schedule:     cfg.Cron.JobCleanupSchedule,
			Enabled:      true,
			BatchSize:    1,
			Concurrency:  1,
			AdminEmail:   cfg.Email.AdminEmail,
			RespectQuota: false,
		},
	}

	for _, d := range defaults {
		if err := s.cronRepo.Ensure(ctx, d); err != nil {
			return fmt.Errorf("failed to create %s config: %w", d.JobName, err)
		}
	}

	return nil
}

// ReloadSchedule reloads the schedule for a specific job (used when updating via dashboard)
func (s *Scheduler) ReloadSchedule(ctx context.Context, jobName string) error {
	if entryID, ok := s.entryIDs[jobName]; ok {
		s.cron.Remove(entryID)
		delete(s.entryIDs, jobName)
	}

	job, err := s.cronRepo.GetByName(ctx, jobName)
	if err != nil {
		return fmt.Errorf("failed to load job config: %w", err)
	}
	if !job.Enabled {
		s.logger.Infow("job disabled, not re-registering", "job", jobName)
		return nil
	}

	return s.registerJob(job)
}
