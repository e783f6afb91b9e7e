// Package collector implements keyword collection: seed fan-out, retries
// against the SearchAd keyword tool, freshness classification and
// persistence of the results.
package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kwlab-go-backend/config"
	"kwlab-go-backend/ent/collectionlog"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/repository"

	"go.uber.org/zap"
)

// AdsClient expands seed keywords into related keywords.
type AdsClient interface {
	RelatedKeywords(ctx context.Context, seeds []string) ([]*model.RelatedKeyword, []byte, error)
}

// Archiver stores raw provider payloads. May be nil when no bucket is
// configured.
type Archiver interface {
	UploadJSON(ctx context.Context, key string, data []byte) error
}

// Notifier sends run summaries and operator alerts. May be nil when SMTP
// is not configured.
type Notifier interface {
	SendCollectionSummary(jobName string, processed, newCount, updated, skipped, failed int, duration time.Duration, errs []string) error
	SendPoolExhaustedAlert(provider string, credentialNames []string) error
}

// PoolStatus names the credentials behind a provider, for operator alerts.
// May be nil.
type PoolStatus interface {
	Provider() string
	Snapshot() []model.CredentialStatus
}

// BatchOutcome aggregates one collection run.
type BatchOutcome struct {
	Processed       int
	NewKeywords     int
	UpdatedKeywords int
	SkippedSeeds    int
	FailedSeeds     []string
	TimeoutCount    int
	APIFailureCount int
	APICalls        int
	PoolExhausted   bool
	PoolProvider    string
	Errors          []string
	Started         time.Time
	Duration        time.Duration
}

// Collector orchestrates collection runs.
type Collector struct {
	keywordRepo repository.Keyword
	seedRepo    repository.SeedUsage
	logRepo     repository.CollectionLog
	ads         AdsClient
	retry       *RetryPolicy
	archive     Archiver
	notifier    Notifier
	pool        PoolStatus

	chunkDelay time.Duration
	freshness  time.Duration
	roundSize  int

	// One pool-exhausted alert per episode; a later successful call
	// re-arms it.
	alertMu     sync.Mutex
	poolAlerted bool

	logger *zap.SugaredLogger
}

// New creates a Collector wired from config.
func New(
	keywordRepo repository.Keyword,
	seedRepo repository.SeedUsage,
	logRepo repository.CollectionLog,
	ads AdsClient,
	retry *RetryPolicy,
	archive Archiver,
	notifier Notifier,
	pool PoolStatus,
	logger *zap.SugaredLogger,
) *Collector {
	cfg := config.C

	chunkDelay := time.Duration(cfg.Collect.ChunkDelayMs) * time.Millisecond
	freshnessDays := cfg.Collect.FreshnessDays
	if freshnessDays <= 0 {
		freshnessDays = 30
	}
	roundSize := cfg.Cron.BatchSize
	if roundSize <= 0 {
		roundSize = 50
	}

	return &Collector{
		keywordRepo: keywordRepo,
		seedRepo:    seedRepo,
		logRepo:     logRepo,
		ads:         ads,
		retry:       retry,
		archive:     archive,
		notifier:    notifier,
		pool:        pool,
		chunkDelay:  chunkDelay,
		freshness:   time.Duration(freshnessDays) * 24 * time.Hour,
		roundSize:   roundSize,
		logger:      logger,
	}
}

// Freshness returns the window within which a previously-seen keyword is
// not re-fetched.
func (c *Collector) Freshness() time.Duration { return c.freshness }

// RunBatch executes one auto-collect batch: pull seed candidates from the
// backlog, expand them, and report counts plus the remaining backlog size.
func (c *Collector) RunBatch(ctx context.Context, input model.CollectBatchInput) (*model.CollectBatchResult, error) {
	limit := input.Limit
	if limit <= 0 || limit > c.roundSize {
		limit = c.roundSize
	}

	candidates, err := c.seedRepo.ListCandidates(ctx, limit, c.freshness)
	if err != nil {
		return nil, err
	}

	seeds := make([]string, 0, len(candidates))
	for _, s := range candidates {
		seeds = append(seeds, s.Seed)
	}

	outcome, err := c.CollectSeeds(ctx, seeds, input.Concurrent, input.TargetKeywords, nil)
	if err != nil {
		return nil, err
	}

	remaining, err := c.seedRepo.CountCandidates(ctx, c.freshness)
	if err != nil {
		c.logger.Warnw("failed to count remaining seed candidates", "error", err)
		remaining = 0
	}

	c.writeLog(ctx, "auto_collect", outcome)

	return c.batchResult(outcome, remaining), nil
}

// CollectSeeds expands an explicit seed list. Used by the batch endpoint,
// manual collection and job runners. The progress callback fires after
// every chunk.
func (c *Collector) CollectSeeds(
	ctx context.Context,
	seeds []string,
	concurrent int,
	targetKeywords int,
	progress func(processed, total int, current string),
) (*BatchOutcome, error) {
	outcome := &BatchOutcome{Started: time.Now()}
	if len(seeds) == 0 {
		return outcome, nil
	}

	start := outcome.Started
	runner := NewRunner(concurrent, c.chunkDelay, c.logger)

	runner.Run(ctx, seeds, c.processSeed, func(ctx context.Context, chunk []model.BatchItemResult) bool {
		for _, item := range chunk {
			// Record usage regardless of the seed's outcome so a failing
			// seed is not retried forever by future runs.
			if err := c.seedRepo.Touch(ctx, item.Seed); err != nil {
				c.logger.Warnw("failed to record seed usage", "seed", item.Seed, "error", err)
			}

			outcome.Processed++
			outcome.APICalls += item.APICalls
			outcome.NewKeywords += item.NewCount
			outcome.UpdatedKeywords += item.Updated

			switch {
			case item.Outcome == model.OutcomeSkipped:
				outcome.SkippedSeeds++
			case !item.Success:
				outcome.FailedSeeds = append(outcome.FailedSeeds, item.Seed)
				outcome.Errors = append(outcome.Errors, fmt.Sprintf("%s: %s", item.Seed, item.Error))
				if item.Timeout {
					outcome.TimeoutCount++
				} else {
					outcome.APIFailureCount++
				}
				if item.PoolExhausted {
					outcome.PoolExhausted = true
					outcome.PoolProvider = item.PoolProvider
				}
			}
		}

		if progress != nil {
			current := ""
			if len(chunk) > 0 {
				current = chunk[len(chunk)-1].Seed
			}
			progress(outcome.Processed, len(seeds), current)
		}

		if outcome.PoolExhausted {
			c.logger.Warn("credential pool exhausted, stopping run")
			return true
		}
		if targetKeywords > 0 && outcome.NewKeywords >= targetKeywords {
			c.logger.Infow("keyword target reached, stopping run",
				"target", targetKeywords, "new", outcome.NewKeywords)
			return true
		}
		return ctx.Err() != nil
	})

	outcome.Duration = time.Since(start)

	if ctx.Err() != nil {
		return outcome, ctx.Err()
	}

	if outcome.PoolExhausted {
		c.alertPoolExhausted(outcome.PoolProvider)
	} else if outcome.APICalls > 0 {
		c.clearPoolAlert()
	}

	c.logger.Infow("collection run finished",
		"processed", outcome.Processed,
		"new", outcome.NewKeywords,
		"updated", outcome.UpdatedKeywords,
		"skipped", outcome.SkippedSeeds,
		"failed", len(outcome.FailedSeeds),
		"elapsed", time.Since(start),
	)

	return outcome, nil
}

// CollectGrouped expands seeds serially in provider-sized groups, one API
// call per group of hint keywords. Used by manual collection, where cutting
// API calls against the daily quota matters more than fan-out speed.
func (c *Collector) CollectGrouped(
	ctx context.Context,
	seeds []string,
	progress func(processed, total int, current string),
) (*BatchOutcome, error) {
	outcome := &BatchOutcome{Started: time.Now()}
	if len(seeds) == 0 {
		return outcome, nil
	}

	succeeded := map[string]bool{}
	skipped := map[string]bool{}

	err := c.retry.DoBatches(ctx, seeds, func(ctx context.Context, chunk []string) error {
		if outcome.PoolExhausted {
			return nil
		}

		group := make([]string, 0, len(chunk))
		for _, seed := range chunk {
			if skipped[seed] {
				continue
			}
			if usage, gerr := c.seedRepo.GetBySeed(ctx, seed); gerr == nil && usage != nil && usage.LastUsedAt != nil &&
				time.Since(*usage.LastUsedAt) < c.freshness {
				skipped[seed] = true
				continue
			}
			group = append(group, seed)
		}
		if len(group) == 0 {
			return nil
		}

		keywords, raw, cerr := c.ads.RelatedKeywords(ctx, group)
		outcome.APICalls++
		if cerr != nil {
			var noCred *model.NoCredentialAvailableError
			if errors.As(cerr, &noCred) {
				outcome.PoolExhausted = true
				outcome.PoolProvider = noCred.Provider
			}
			return cerr
		}

		// The provider merges results across the group, so stored rows are
		// attributed to the hint list as it was sent.
		label := strings.Join(group, ",")

		if c.archive != nil && len(raw) > 0 {
			key := fmt.Sprintf("searchad/%s-%d.json", group[0], time.Now().Unix())
			if aerr := c.archive.UploadJSON(ctx, key, raw); aerr != nil {
				c.logger.Warnw("failed to archive raw response", "seeds", label, "error", aerr)
			}
		}

		for _, kw := range keywords {
			o, serr := c.storeKeyword(ctx, label, kw)
			if serr != nil {
				c.logger.Warnw("failed to store keyword", "keyword", kw.Keyword, "error", serr)
				continue
			}
			switch o {
			case model.OutcomeNew:
				outcome.NewKeywords++
			case model.OutcomeUpdated:
				outcome.UpdatedKeywords++
			}
		}

		for _, seed := range group {
			succeeded[seed] = true
		}
		return nil
	}, func(processed, total int) {
		if progress != nil {
			progress(processed, total, "")
		}
	})

	for _, seed := range seeds {
		outcome.Processed++
		switch {
		case skipped[seed]:
			outcome.SkippedSeeds++
		case !succeeded[seed]:
			outcome.FailedSeeds = append(outcome.FailedSeeds, seed)
			if !outcome.PoolExhausted {
				outcome.APIFailureCount++
			}
		}
		if terr := c.seedRepo.Touch(ctx, seed); terr != nil {
			c.logger.Warnw("failed to record seed usage", "seed", seed, "error", terr)
		}
	}
	outcome.Duration = time.Since(outcome.Started)

	if ctx.Err() != nil {
		return outcome, ctx.Err()
	}
	if err != nil {
		outcome.Errors = append(outcome.Errors, err.Error())
	}

	c.writeLog(ctx, "manual_collect", outcome)

	if outcome.PoolExhausted {
		c.alertPoolExhausted(outcome.PoolProvider)
	} else if outcome.APICalls > 0 {
		c.clearPoolAlert()
	}

	return outcome, nil
}

// alertPoolExhausted tells the operator the credential pool ran dry. Sent
// once per episode so repeated empty runs do not flood the inbox.
func (c *Collector) alertPoolExhausted(provider string) {
	if c.notifier == nil {
		return
	}

	c.alertMu.Lock()
	if c.poolAlerted {
		c.alertMu.Unlock()
		return
	}
	c.poolAlerted = true
	c.alertMu.Unlock()

	var names []string
	if c.pool != nil {
		provider = c.pool.Provider()
		for _, st := range c.pool.Snapshot() {
			names = append(names, st.Name)
		}
	}

	if err := c.notifier.SendPoolExhaustedAlert(provider, names); err != nil {
		c.logger.Warnw("failed to send pool exhausted alert", "provider", provider, "error", err)
	}
}

func (c *Collector) clearPoolAlert() {
	c.alertMu.Lock()
	c.poolAlerted = false
	c.alertMu.Unlock()
}

// processSeed expands one seed and persists its related keywords.
func (c *Collector) processSeed(ctx context.Context, seed string) model.BatchItemResult {
	result := model.BatchItemResult{Seed: seed}

	// A seed expanded within the freshness window is skipped outright,
	// with no API call and no writes.
	if usage, err := c.seedRepo.GetBySeed(ctx, seed); err == nil && usage != nil && usage.LastUsedAt != nil {
		if time.Since(*usage.LastUsedAt) < c.freshness {
			result.Success = true
			result.Outcome = model.OutcomeSkipped
			return result
		}
	}

	var keywords []*model.RelatedKeyword
	var raw []byte

	err := c.retry.Do(ctx, seed, func(ctx context.Context) error {
		var opErr error
		keywords, raw, opErr = c.ads.RelatedKeywords(ctx, []string{seed})
		return opErr
	})
	if err != nil {
		result.Outcome = model.OutcomeFailed
		result.Error = err.Error()
		result.Timeout = errors.Is(err, context.DeadlineExceeded)

		var noCred *model.NoCredentialAvailableError
		if errors.As(err, &noCred) {
			result.PoolExhausted = true
			result.PoolProvider = noCred.Provider
		}

		var exhausted *model.ExhaustedRetriesError
		if errors.As(err, &exhausted) {
			result.APICalls = exhausted.Attempts
		} else {
			result.APICalls = 1
		}
		return result
	}

	result.Success = true
	result.APICalls = 1
	result.Keywords = keywords

	if c.archive != nil && len(raw) > 0 {
		key := fmt.Sprintf("searchad/%s-%d.json", seed, time.Now().Unix())
		if err := c.archive.UploadJSON(ctx, key, raw); err != nil {
			c.logger.Warnw("failed to archive raw response", "seed", seed, "error", err)
		}
	}

	newCount, updated, skipped := 0, 0, 0
	for _, kw := range keywords {
		outcome, err := c.storeKeyword(ctx, seed, kw)
		if err != nil {
			c.logger.Warnw("failed to store keyword", "keyword", kw.Keyword, "error", err)
			continue
		}
		switch outcome {
		case model.OutcomeNew:
			newCount++
		case model.OutcomeUpdated:
			updated++
		case model.OutcomeSkipped:
			skipped++
		}
	}

	result.NewCount = newCount
	result.Updated = updated
	result.Skipped = skipped

	switch {
	case newCount > 0:
		result.Outcome = model.OutcomeNew
	case updated > 0:
		result.Outcome = model.OutcomeUpdated
	default:
		result.Outcome = model.OutcomeSkipped
	}
	return result
}

// storeKeyword classifies one related keyword against the freshness window
// and persists it: unseen inserts, stale rows get their metrics refreshed,
// fresh rows are left alone.
func (c *Collector) storeKeyword(ctx context.Context, seed string, kw *model.RelatedKeyword) (model.ItemOutcome, error) {
	existing, err := c.keywordRepo.GetByText(ctx, kw.Keyword)
	if err != nil {
		var notFound *model.NotFoundError
		if !errors.As(err, &notFound) {
			return model.OutcomeFailed, err
		}
	}

	if existing == nil {
		if _, _, err := c.keywordRepo.Upsert(ctx, seed, kw); err != nil {
			return model.OutcomeFailed, err
		}
		// New keywords become future seed candidates.
		if err := c.seedRepo.Ensure(ctx, kw.Keyword); err != nil {
			c.logger.Warnw("failed to register keyword as seed", "keyword", kw.Keyword, "error", err)
		}
		return model.OutcomeNew, nil
	}

	if time.Since(existing.UpdatedAt) < c.freshness {
		return model.OutcomeSkipped, nil
	}

	if _, err := c.keywordRepo.UpdateMetrics(ctx, existing.ID, kw); err != nil {
		return model.OutcomeFailed, err
	}
	return model.OutcomeUpdated, nil
}

func (c *Collector) batchResult(o *BatchOutcome, remaining int) *model.CollectBatchResult {
	successRate := 0.0
	if o.Processed > 0 {
		successRate = float64(o.Processed-len(o.FailedSeeds)) / float64(o.Processed)
	}

	return &model.CollectBatchResult{
		Success:          !o.PoolExhausted,
		Processed:        o.Processed,
		TotalNewKeywords: o.NewKeywords,
		Remaining:        remaining,
		Stats: model.CollectStats{
			TotalAttempted:  o.Processed,
			SuccessRate:     successRate,
			TimeoutCount:    o.TimeoutCount,
			APIFailureCount: o.APIFailureCount,
			FailedSeeds:     o.FailedSeeds,
		},
	}
}

// writeLog persists a run record and sends the summary email, both best
// effort.
func (c *Collector) writeLog(ctx context.Context, jobName string, o *BatchOutcome) {
	if o.Processed == 0 && !o.PoolExhausted {
		// Nothing to do; skip persisting history to avoid noisy records.
		return
	}

	status := collectionlog.StatusSuccess
	switch {
	case o.PoolExhausted && o.Processed == 0:
		status = collectionlog.StatusQuotaExceeded
	case len(o.FailedSeeds) > 0 && len(o.FailedSeeds) == o.Processed:
		status = collectionlog.StatusFailed
	case len(o.FailedSeeds) > 0 || o.PoolExhausted:
		status = collectionlog.StatusPartial
	}

	startedAt := o.Started
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	completedAt := startedAt.Add(o.Duration)
	entry := &model.CollectionLog{
		JobName:         jobName,
		Status:          status,
		StartedAt:       startedAt,
		CompletedAt:     &completedAt,
		DurationSeconds: int(o.Duration.Seconds()),
		TotalProcessed:  o.Processed,
		NewCount:        o.NewKeywords,
		UpdatedCount:    o.UpdatedKeywords,
		SkippedCount:    o.SkippedSeeds,
		FailedCount:     len(o.FailedSeeds),
		APICallsMade:    o.APICalls,
	}
	if len(o.Errors) > 0 {
		summary := strings.Join(o.Errors, "; ")
		entry.ErrorSummary = &summary
	}

	if _, err := c.logRepo.Create(ctx, entry); err != nil {
		c.logger.Warnw("failed to persist collection log", "error", err)
	}

	if c.notifier != nil {
		if err := c.notifier.SendCollectionSummary(
			jobName,
			o.Processed,
			o.NewKeywords,
			o.UpdatedKeywords,
			o.SkippedSeeds,
			len(o.FailedSeeds),
			o.Duration,
			o.Errors,
		); err != nil {
			c.logger.Warnw("failed to send collection summary", "error", err)
		}
	}
}
