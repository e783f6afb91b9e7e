package collector

import (
	"context"
	"sync"
	"time"

	"kwlab-go-backend/pkg/entity/model"

	"go.uber.org/zap"
)

// Runner fans a seed list out into fixed-size chunks. Items within a chunk
// run concurrently and settle individually; chunks run strictly in order
// with a smoothing delay in between.
type Runner struct {
	Concurrency int
	ChunkDelay  time.Duration

	logger *zap.SugaredLogger
}

// NewRunner builds a batch runner. Concurrency is clamped to 1..25.
func NewRunner(concurrency int, chunkDelay time.Duration, logger *zap.SugaredLogger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > 25 {
		concurrency = 25
	}
	return &Runner{
		Concurrency: concurrency,
		ChunkDelay:  chunkDelay,
		logger:      logger,
	}
}

// AfterChunkFunc runs after every chunk with that chunk's settled results.
// Returning stop=true ends the run early (target reached, cancellation).
type AfterChunkFunc func(ctx context.Context, chunk []model.BatchItemResult) (stop bool)

// Run processes seeds chunk by chunk. A panic-free process func is assumed;
// one seed's failure never aborts its siblings. Results are grouped by chunk
// but item order within a chunk follows the input slice, not completion
// order.
func (r *Runner) Run(
	ctx context.Context,
	seeds []string,
	process func(ctx context.Context, seed string) model.BatchItemResult,
	afterChunk AfterChunkFunc,
) []model.BatchItemResult {
	results := make([]model.BatchItemResult, 0, len(seeds))

	for start := 0; start < len(seeds); start += r.Concurrency {
		if ctx.Err() != nil {
			break
		}

		end := start + r.Concurrency
		if end > len(seeds) {
			end = len(seeds)
		}
		chunk := seeds[start:end]

		chunkResults := make([]model.BatchItemResult, len(chunk))
		var wg sync.WaitGroup
		for i, seed := range chunk {
			wg.Add(1)
			go func(i int, seed string) {
				defer wg.Done()
				chunkResults[i] = process(ctx, seed)
			}(i, seed)
		}
		wg.Wait()

		results = append(results, chunkResults...)

		if afterChunk != nil && afterChunk(ctx, chunkResults) {
			break
		}

		if end < len(seeds) {
			if err := sleepWithContext(ctx, r.ChunkDelay); err != nil {
				break
			}
		}
	}

	return results
}
