package collector_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/collector"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPolicy(t *testing.T) *collector.RetryPolicy {
	t.Helper()
	return &collector.RetryPolicy{
		BatchSize:         5,
		Delay:             time.Millisecond,
		MaxRetries:        3,
		BackoffMultiplier: 2,
		RateLimitCooldown: 5 * time.Millisecond,
	}
}

func TestDoSucceedsAfterKFailures(t *testing.T) {
	p := newPolicy(t).WithLogger(zap.NewNop().Sugar())

	calls := 0
	err := p.Do(context.Background(), "seed", func(ctx context.Context) error {
		calls++
		if calls <= 2 {
			return &model.TransientError{Err: errors.New("flaky")}
		}
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, 3, calls, "operation should be invoked exactly K+1 times")
}

func TestDoExhaustsRetries(t *testing.T) {
	p := newPolicy(t).WithLogger(zap.NewNop().Sugar())

	calls := 0
	err := p.Do(context.Background(), "seed", func(ctx context.Context) error {
		calls++
		return &model.TransientError{Err: fmt.Errorf("boom %d", calls)}
	})

	require.Equal(t, 3, calls, "operation invoked exactly MaxRetries times")

	var exhausted *model.ExhaustedRetriesError
	require.True(t, errors.As(err, &exhausted))
	require.Equal(t, 3, exhausted.Attempts)
	require.Contains(t, err.Error(), "boom 3", "last underlying error is carried")
}

func TestDoRateLimitedUsesCooldown(t *testing.T) {
	p := newPolicy(t).WithLogger(zap.NewNop().Sugar())
	p.RateLimitCooldown = 40 * time.Millisecond

	calls := 0
	start := time.Now()
	err := p.Do(context.Background(), "seed", func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &model.RateLimitedError{}
		}
		return nil
	})

	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond,
		"rate-limit failure must sleep the fixed cooldown, not the backoff")
}

func TestDoNoCredentialIsTerminal(t *testing.T) {
	p := newPolicy(t).WithLogger(zap.NewNop().Sugar())

	calls := 0
	err := p.Do(context.Background(), "seed", func(ctx context.Context) error {
		calls++
		return &model.NoCredentialAvailableError{Provider: "searchad"}
	})

	require.Equal(t, 1, calls, "pool exhaustion is a configuration error, never retried")
	var noCred *model.NoCredentialAvailableError
	require.True(t, errors.As(err, &noCred))
}

func TestDoRespectsContextCancellation(t *testing.T) {
	p := newPolicy(t).WithLogger(zap.NewNop().Sugar())
	p.Delay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := p.Do(ctx, "seed", func(ctx context.Context) error {
		return &model.TransientError{Err: errors.New("flaky")}
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDoBatchesChunking(t *testing.T) {
	p := newPolicy(t).WithLogger(zap.NewNop().Sugar())

	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}

	var chunkSizes []int
	var progress [][2]int
	err := p.DoBatches(context.Background(), items,
		func(ctx context.Context, chunk []string) error {
			chunkSizes = append(chunkSizes, len(chunk))
			return nil
		},
		func(processed, total int) {
			progress = append(progress, [2]int{processed, total})
		},
	)

	require.NoError(t, err)
	require.Equal(t, []int{5, 5, 2}, chunkSizes)
	require.Equal(t, [][2]int{{5, 12}, {10, 12}, {12, 12}}, progress)
}

func TestDoBatchesAccumulatesChunkErrors(t *testing.T) {
	p := newPolicy(t).WithLogger(zap.NewNop().Sugar())
	p.MaxRetries = 1

	items := []string{"a", "b", "c", "d", "e", "f"}

	calls := 0
	err := p.DoBatches(context.Background(), items,
		func(ctx context.Context, chunk []string) error {
			calls++
			if calls == 1 {
				return &model.TransientError{Err: errors.New("first chunk down")}
			}
			return nil
		},
		nil,
	)

	require.Error(t, err, "failed chunk surfaces in the aggregate error")
	require.Equal(t, 2, calls, "later chunks still run after a chunk failure")
}
