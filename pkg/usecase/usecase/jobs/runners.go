package jobs

import (
	"context"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/collector"
	"kwlab-go-backend/pkg/usecase/usecase/doccount"
)

// ManualCollectRunner expands an explicit seed list, grouping seeds into
// provider-sized hint batches so each group costs one API call.
func ManualCollectRunner(col *collector.Collector) Runner {
	return func(ctx context.Context, h *Handle) (map[string]interface{}, error) {
		p := h.Params()

		outcome, err := col.CollectGrouped(ctx, p.Seeds,
			func(processed, total int, current string) {
				h.Progress(processed, total, current)
			})
		if err != nil {
			return nil, err
		}

		return outcomeResult(outcome), nil
	}
}

// AutoCollectRunner runs one backlog batch.
func AutoCollectRunner(col *collector.Collector) Runner {
	return func(ctx context.Context, h *Handle) (map[string]interface{}, error) {
		p := h.Params()

		res, err := col.RunBatch(ctx, model.CollectBatchInput{
			Limit:          p.Limit,
			Concurrent:     p.Concurrent,
			TargetKeywords: p.TargetKeywords,
		})
		if err != nil {
			return nil, err
		}

		h.Progress(res.Processed, res.Processed, "")
		return map[string]interface{}{
			"processed":        res.Processed,
			"totalNewKeywords": res.TotalNewKeywords,
			"remaining":        res.Remaining,
			"success":          res.Success,
		}, nil
	}
}

// LargeScaleAutoCollectRunner drains the seed backlog round by round until
// the keyword target is met, the backlog runs out, the pool is exhausted
// or the job is cancelled.
func LargeScaleAutoCollectRunner(col *collector.Collector) Runner {
	return func(ctx context.Context, h *Handle) (map[string]interface{}, error) {
		p := h.Params()

		processed, totalNew, rounds := 0, 0, 0
		for {
			if h.Cancelled() || ctx.Err() != nil {
				break
			}

			res, err := col.RunBatch(ctx, model.CollectBatchInput{
				Limit:      p.Limit,
				Concurrent: p.Concurrent,
			})
			if err != nil {
				return largeScaleResult(processed, totalNew, rounds), err
			}

			rounds++
			processed += res.Processed
			totalNew += res.TotalNewKeywords
			h.Progress(totalNew, p.TargetKeywords, "")

			if !res.Success {
				h.Message("credential pool exhausted")
				break
			}
			if p.TargetKeywords > 0 && totalNew >= p.TargetKeywords {
				break
			}
			if res.Processed == 0 || res.Remaining == 0 {
				h.Message("seed backlog drained")
				break
			}
		}

		return largeScaleResult(processed, totalNew, rounds), nil
	}
}

// DocCountRunner collects document counts for the job's keyword list, or
// backfills stale ones when no list is given.
func DocCountRunner(svc *doccount.Service, window time.Duration) Runner {
	return func(ctx context.Context, h *Handle) (map[string]interface{}, error) {
		p := h.Params()

		if len(p.Seeds) == 0 {
			limit := p.Limit
			if limit <= 0 {
				limit = 100
			}
			processed, err := svc.CollectMissing(ctx, limit, window)
			if err != nil {
				return map[string]interface{}{"processed": processed}, err
			}
			return map[string]interface{}{"processed": processed}, nil
		}

		processed := 0
		for i, kw := range p.Seeds {
			if h.Cancelled() || ctx.Err() != nil {
				break
			}
			h.Progress(i, len(p.Seeds), kw)
			if _, err := svc.CollectForKeyword(ctx, kw); err != nil {
				return map[string]interface{}{"processed": processed}, err
			}
			processed++
		}
		h.Progress(processed, len(p.Seeds), "")

		return map[string]interface{}{"processed": processed}, nil
	}
}

func outcomeResult(o *collector.BatchOutcome) map[string]interface{} {
	return map[string]interface{}{
		"processed":       o.Processed,
		"newKeywords":     o.NewKeywords,
		"updatedKeywords": o.UpdatedKeywords,
		"skippedSeeds":    o.SkippedSeeds,
		"failedSeeds":     o.FailedSeeds,
		"apiCalls":        o.APICalls,
		"poolExhausted":   o.PoolExhausted,
	}
}

func largeScaleResult(processed, totalNew, rounds int) map[string]interface{} {
	return map[string]interface{}{
		"processed":        processed,
		"totalNewKeywords": totalNew,
		"rounds":           rounds,
	}
}
