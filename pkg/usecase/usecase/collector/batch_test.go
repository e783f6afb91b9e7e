package collector_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/collector"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunnerChunksOf12By5(t *testing.T) {
	r := collector.NewRunner(5, 0, zap.NewNop().Sugar())

	seeds := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12"}

	var mu sync.Mutex
	var chunkSizes []int

	results := r.Run(context.Background(), seeds,
		func(ctx context.Context, seed string) model.BatchItemResult {
			return model.BatchItemResult{Seed: seed, Success: true}
		},
		func(ctx context.Context, chunk []model.BatchItemResult) bool {
			mu.Lock()
			chunkSizes = append(chunkSizes, len(chunk))
			mu.Unlock()
			return false
		},
	)

	require.Equal(t, []int{5, 5, 2}, chunkSizes)
	require.Len(t, results, 12)
}

func TestRunnerFailureDoesNotAbortSiblings(t *testing.T) {
	r := collector.NewRunner(5, 0, zap.NewNop().Sugar())

	seeds := []string{"s1", "s2", "s3", "s4", "s5"}

	results := r.Run(context.Background(), seeds,
		func(ctx context.Context, seed string) model.BatchItemResult {
			if seed == "s3" {
				return model.BatchItemResult{Seed: seed, Outcome: model.OutcomeFailed, Error: "boom"}
			}
			return model.BatchItemResult{Seed: seed, Success: true}
		},
		nil,
	)

	require.Len(t, results, 5)
	succeeded := 0
	for _, res := range results {
		if res.Success {
			succeeded++
		}
	}
	require.Equal(t, 4, succeeded, "siblings of a failed item still complete")
}

func TestRunnerEarlyStop(t *testing.T) {
	r := collector.NewRunner(2, 0, zap.NewNop().Sugar())

	seeds := []string{"s1", "s2", "s3", "s4", "s5", "s6"}

	processed := 0
	results := r.Run(context.Background(), seeds,
		func(ctx context.Context, seed string) model.BatchItemResult {
			return model.BatchItemResult{Seed: seed, Success: true}
		},
		func(ctx context.Context, chunk []model.BatchItemResult) bool {
			processed += len(chunk)
			return processed >= 4
		},
	)

	require.Len(t, results, 4, "run stops between chunks once the target is hit")
}

func TestRunnerClampsConcurrency(t *testing.T) {
	require.Equal(t, 1, collector.NewRunner(0, 0, zap.NewNop().Sugar()).Concurrency)
	require.Equal(t, 25, collector.NewRunner(100, 0, zap.NewNop().Sugar()).Concurrency)
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	r := collector.NewRunner(2, time.Millisecond, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())

	results := r.Run(ctx, []string{"s1", "s2", "s3", "s4"},
		func(ctx context.Context, seed string) model.BatchItemResult {
			return model.BatchItemResult{Seed: seed, Success: true}
		},
		func(ctx context.Context, chunk []model.BatchItemResult) bool {
			cancel()
			return false
		},
	)

	require.Len(t, results, 2, "no new chunk starts after cancellation")
}
