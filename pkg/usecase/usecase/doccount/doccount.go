// Package doccount collects per-channel document totals for keywords.
package doccount

import (
	"context"
	"errors"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/external/opensearch"
	"kwlab-go-backend/pkg/usecase/repository"
	"kwlab-go-backend/pkg/usecase/usecase/collector"

	"go.uber.org/zap"
)

// SearchClient returns the reported document total of one channel.
type SearchClient interface {
	Total(ctx context.Context, channel opensearch.Channel, keyword string) (int, error)
}

// Service collects document counts channel by channel. A failing channel
// contributes zero instead of failing the whole keyword, so partial data
// still lands.
type Service struct {
	docRepo repository.DocCount
	search  SearchClient
	retry   *collector.RetryPolicy
	logger  *zap.SugaredLogger
}

func NewService(docRepo repository.DocCount, search SearchClient, retry *collector.RetryPolicy, logger *zap.SugaredLogger) *Service {
	return &Service{
		docRepo: docRepo,
		search:  search,
		retry:   retry,
		logger:  logger,
	}
}

// CollectForKeyword fetches all four channel totals for one keyword and
// upserts the row. The collection timestamp is set when the last channel
// answers, not per channel.
func (s *Service) CollectForKeyword(ctx context.Context, keyword string) (*model.KeywordDocCount, error) {
	counts := &model.DocCounts{Keyword: keyword}

	for _, channel := range opensearch.Channels() {
		total, err := s.fetchTotal(ctx, channel, keyword)
		if err != nil {
			var noCred *model.NoCredentialAvailableError
			if errors.As(err, &noCred) {
				return nil, err
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warnw("channel count failed, recording zero",
				"keyword", keyword, "channel", channel, "error", err)
			total = 0
		}

		switch channel {
		case opensearch.ChannelBlog:
			counts.BlogTotal = total
		case opensearch.ChannelCafe:
			counts.CafeTotal = total
		case opensearch.ChannelWeb:
			counts.WebTotal = total
		case opensearch.ChannelNews:
			counts.NewsTotal = total
		}
	}

	counts.CollectedAt = time.Now()

	return s.docRepo.Upsert(ctx, counts)
}

// CollectMissing backfills document counts for keywords with no row or a
// row older than the window. Returns how many keywords were processed.
func (s *Service) CollectMissing(ctx context.Context, limit int, window time.Duration) (int, error) {
	keywords, err := s.docRepo.ListStaleKeywords(ctx, limit, window)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, kw := range keywords {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}

		if _, err := s.CollectForKeyword(ctx, kw); err != nil {
			var noCred *model.NoCredentialAvailableError
			if errors.As(err, &noCred) {
				s.logger.Warnw("credential pool exhausted, stopping backfill",
					"processed", processed, "remaining", len(keywords)-processed)
				return processed, err
			}
			s.logger.Warnw("doc count backfill failed for keyword", "keyword", kw, "error", err)
			continue
		}
		processed++
	}

	s.logger.Infow("doc count backfill finished", "processed", processed, "candidates", len(keywords))
	return processed, nil
}

func (s *Service) fetchTotal(ctx context.Context, channel opensearch.Channel, keyword string) (int, error) {
	var total int
	err := s.retry.Do(ctx, keyword+"/"+string(channel), func(ctx context.Context) error {
		var opErr error
		total, opErr = s.search.Total(ctx, channel, keyword)
		return opErr
	})
	return total, err
}
