package collector

import (
	"context"
	"errors"
	"time"

	"kwlab-go-backend/config"
	"kwlab-go-backend/pkg/entity/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// RetryPolicy bounds retries around provider calls. Rate-limit signals get
// a long fixed cooldown; everything else backs off exponentially. Retry is
// always bounded here; indefinite retry is a product behavior that lives in
// the auto-collect loop, not a resilience primitive.
type RetryPolicy struct {
	BatchSize         int
	Delay             time.Duration
	MaxRetries        int
	BackoffMultiplier float64
	RateLimitCooldown time.Duration

	logger *zap.SugaredLogger
}

// NewRetryPolicy builds a policy from config.
func NewRetryPolicy(logger *zap.SugaredLogger) *RetryPolicy {
	cfg := config.C.Collect

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 5
	}
	delay := time.Duration(cfg.RetryDelayMs) * time.Millisecond
	if delay <= 0 {
		delay = time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	multiplier := cfg.BackoffMultiplier
	if multiplier <= 1 {
		multiplier = 2
	}
	cooldown := time.Duration(cfg.RateLimitCooldownSeconds) * time.Second
	if cooldown <= 0 {
		cooldown = 5 * time.Minute
	}

	return &RetryPolicy{
		BatchSize:         batchSize,
		Delay:             delay,
		MaxRetries:        maxRetries,
		BackoffMultiplier: multiplier,
		RateLimitCooldown: cooldown,
		logger:            logger,
	}
}

// WithLogger sets the policy logger. Useful for tests that construct the
// policy directly instead of from config.
func (p *RetryPolicy) WithLogger(logger *zap.SugaredLogger) *RetryPolicy {
	p.logger = logger
	return p
}

// Do attempts op up to MaxRetries times. NoCredentialAvailable and
// input-validation errors are terminal and returned as-is; after the last
// failed attempt the last error is wrapped in ExhaustedRetriesError.
func (p *RetryPolicy) Do(ctx context.Context, label string, op func(context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.Delay
	b.Multiplier = p.BackoffMultiplier
	b.RandomizationFactor = 0
	b.MaxInterval = time.Hour
	b.MaxElapsedTime = 0
	b.Reset()

	var lastErr error

	for attempt := 1; attempt <= p.MaxRetries; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		var noCred *model.NoCredentialAvailableError
		var invalid *model.InvalidParamError
		if errors.As(err, &noCred) || errors.As(err, &invalid) {
			return err
		}

		if attempt == p.MaxRetries {
			break
		}

		sleep := b.NextBackOff()
		var rateErr *model.RateLimitedError
		if errors.As(err, &rateErr) {
			// Provider-documented cooldown wins over exponential backoff.
			sleep = p.RateLimitCooldown
			if rateErr.RetryAfter > sleep {
				sleep = rateErr.RetryAfter
			}
		}

		p.logger.Infow("retrying after failure",
			"label", label,
			"attempt", attempt,
			"max_retries", p.MaxRetries,
			"sleep", sleep,
			"error", err,
		)

		if err := sleepWithContext(ctx, sleep); err != nil {
			return err
		}
	}

	return &model.ExhaustedRetriesError{Attempts: p.MaxRetries, Last: lastErr}
}

// DoBatches chunks items by BatchSize, runs each chunk through Do, sleeps
// Delay between chunks (not after the last) and reports progress after each
// chunk. Per-chunk errors are accumulated, not fatal.
func (p *RetryPolicy) DoBatches(
	ctx context.Context,
	items []string,
	fn func(ctx context.Context, chunk []string) error,
	onProgress func(processed, total int),
) error {
	var errs *multierror.Error

	total := len(items)
	processed := 0

	for start := 0; start < total; start += p.BatchSize {
		end := start + p.BatchSize
		if end > total {
			end = total
		}
		chunk := items[start:end]

		if err := p.Do(ctx, "batch", func(ctx context.Context) error {
			return fn(ctx, chunk)
		}); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			errs = multierror.Append(errs, err)
		}

		processed += len(chunk)
		if onProgress != nil {
			onProgress(processed, total)
		}

		if end < total {
			if err := sleepWithContext(ctx, p.Delay); err != nil {
				return err
			}
		}
	}

	return errs.ErrorOrNil()
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
