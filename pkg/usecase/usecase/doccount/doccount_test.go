package doccount_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/external/opensearch"
	"kwlab-go-backend/pkg/usecase/usecase/collector"
	"kwlab-go-backend/pkg/usecase/usecase/doccount"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDocRepo struct {
	upserted []*model.DocCounts
	stale    []string
}

func (f *fakeDocRepo) GetByKeyword(ctx context.Context, keyword string) (*model.KeywordDocCount, error) {
	return nil, model.NewNotFoundError(errors.New(keyword))
}

func (f *fakeDocRepo) Upsert(ctx context.Context, counts *model.DocCounts) (*model.KeywordDocCount, error) {
	f.upserted = append(f.upserted, counts)
	return &model.KeywordDocCount{Keyword: counts.Keyword}, nil
}

func (f *fakeDocRepo) ListStaleKeywords(ctx context.Context, limit int, window time.Duration) ([]string, error) {
	if limit < len(f.stale) {
		return f.stale[:limit], nil
	}
	return f.stale, nil
}

type fakeSearch struct {
	totals map[opensearch.Channel]int
	errs   map[opensearch.Channel]error
	calls  int
}

func (f *fakeSearch) Total(ctx context.Context, channel opensearch.Channel, keyword string) (int, error) {
	f.calls++
	if err, ok := f.errs[channel]; ok {
		return 0, err
	}
	return f.totals[channel], nil
}

func testRetry() *collector.RetryPolicy {
	return (&collector.RetryPolicy{
		BatchSize:         5,
		Delay:             time.Millisecond,
		MaxRetries:        2,
		BackoffMultiplier: 2,
		RateLimitCooldown: time.Millisecond,
	}).WithLogger(zap.NewNop().Sugar())
}

func TestCollectForKeywordAllChannels(t *testing.T) {
	repo := &fakeDocRepo{}
	search := &fakeSearch{totals: map[opensearch.Channel]int{
		opensearch.ChannelBlog: 1200,
		opensearch.ChannelCafe: 300,
		opensearch.ChannelWeb:  45000,
		opensearch.ChannelNews: 7,
	}}

	svc := doccount.NewService(repo, search, testRetry(), zap.NewNop().Sugar())

	before := time.Now()
	_, err := svc.CollectForKeyword(context.Background(), "camping chair")
	require.NoError(t, err)

	require.Len(t, repo.upserted, 1)
	row := repo.upserted[0]
	require.Equal(t, "camping chair", row.Keyword)
	require.Equal(t, 1200, row.BlogTotal)
	require.Equal(t, 300, row.CafeTotal)
	require.Equal(t, 45000, row.WebTotal)
	require.Equal(t, 7, row.NewsTotal)
	require.False(t, row.CollectedAt.Before(before))
}

func TestCollectForKeywordFailedChannelRecordsZero(t *testing.T) {
	repo := &fakeDocRepo{}
	search := &fakeSearch{
		totals: map[opensearch.Channel]int{
			opensearch.ChannelBlog: 100,
			opensearch.ChannelWeb:  200,
			opensearch.ChannelNews: 300,
		},
		errs: map[opensearch.Channel]error{
			opensearch.ChannelCafe: &model.TransientError{Err: errors.New("cafe down")},
		},
	}

	svc := doccount.NewService(repo, search, testRetry(), zap.NewNop().Sugar())

	_, err := svc.CollectForKeyword(context.Background(), "tent")
	require.NoError(t, err, "a failing channel is not an error for the keyword")

	require.Len(t, repo.upserted, 1)
	row := repo.upserted[0]
	require.Equal(t, 100, row.BlogTotal)
	require.Zero(t, row.CafeTotal)
	require.Equal(t, 200, row.WebTotal)
	require.Equal(t, 300, row.NewsTotal)
}

func TestCollectForKeywordStopsWhenPoolExhausted(t *testing.T) {
	repo := &fakeDocRepo{}
	search := &fakeSearch{errs: map[opensearch.Channel]error{
		opensearch.ChannelBlog: &model.NoCredentialAvailableError{Provider: "openapi"},
	}}

	svc := doccount.NewService(repo, search, testRetry(), zap.NewNop().Sugar())

	_, err := svc.CollectForKeyword(context.Background(), "tent")

	var noCred *model.NoCredentialAvailableError
	require.ErrorAs(t, err, &noCred)
	require.Empty(t, repo.upserted, "no partial row when the pool is gone")
	require.Equal(t, 1, search.calls, "remaining channels are not attempted")
}

func TestCollectMissingProcessesBacklog(t *testing.T) {
	repo := &fakeDocRepo{stale: []string{"a", "b", "c"}}
	search := &fakeSearch{totals: map[opensearch.Channel]int{opensearch.ChannelBlog: 1}}

	svc := doccount.NewService(repo, search, testRetry(), zap.NewNop().Sugar())

	processed, err := svc.CollectMissing(context.Background(), 10, 30*24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, 3, processed)
	require.Len(t, repo.upserted, 3)
}

func TestCollectMissingHonorsLimit(t *testing.T) {
	repo := &fakeDocRepo{stale: []string{"a", "b", "c"}}
	search := &fakeSearch{}

	svc := doccount.NewService(repo, search, testRetry(), zap.NewNop().Sugar())

	processed, err := svc.CollectMissing(context.Background(), 2, 30*24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, 2, processed)
}
