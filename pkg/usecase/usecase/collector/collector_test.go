package collector_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"kwlab-go-backend/ent"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/collector"
	"kwlab-go-backend/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeKeywordRepo keeps keywords in memory keyed by text.
type fakeKeywordRepo struct {
	mu       sync.Mutex
	rows     map[string]*model.Keyword
	upserts  int
	updates  int
	failNext error
}

func newFakeKeywordRepo() *fakeKeywordRepo {
	return &fakeKeywordRepo{rows: map[string]*model.Keyword{}}
}

func (f *fakeKeywordRepo) GetByText(ctx context.Context, text string) (*model.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if kw, ok := f.rows[text]; ok {
		return kw, nil
	}
	return nil, model.NewNotFoundError(errors.New(text))
}

func (f *fakeKeywordRepo) Get(ctx context.Context, id model.ID) (*model.Keyword, error) {
	return nil, model.NewNotFoundError(errors.New(string(id)))
}

func (f *fakeKeywordRepo) Create(ctx context.Context, input model.CreateKeywordInput) (*model.Keyword, error) {
	return nil, errors.New("not used")
}

func (f *fakeKeywordRepo) UpdateMetrics(ctx context.Context, id model.ID, kw *model.RelatedKeyword) (*model.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	for _, row := range f.rows {
		if row.ID == id {
			row.AvgMonthlySearch = kw.AvgMonthlySearch
			row.UpdatedAt = time.Now()
			return row, nil
		}
	}
	return nil, model.NewNotFoundError(errors.New(string(id)))
}

func (f *fakeKeywordRepo) Upsert(ctx context.Context, seed string, kw *model.RelatedKeyword) (*model.Keyword, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, false, err
	}
	f.upserts++
	row := &ent.Keyword{
		ID:               model.ID("KW" + kw.Keyword),
		Keyword:          kw.Keyword,
		AvgMonthlySearch: kw.AvgMonthlySearch,
		Seed:             seed,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	f.rows[kw.Keyword] = row
	return row, true, nil
}

func (f *fakeKeywordRepo) List(ctx context.Context, input model.ListKeywordsInput) (*model.KeywordPage, error) {
	return &model.KeywordPage{}, nil
}

func (f *fakeKeywordRepo) AllForExport(ctx context.Context) ([]*model.Keyword, error) {
	return nil, nil
}

func (f *fakeKeywordRepo) Insights(ctx context.Context) (*model.KeywordInsights, error) {
	return &model.KeywordInsights{}, nil
}

func (f *fakeKeywordRepo) Delete(ctx context.Context, id model.ID) error { return nil }

// fakeSeedRepo keeps seed usage in memory.
type fakeSeedRepo struct {
	mu      sync.Mutex
	rows    map[string]*model.SeedUsage
	touched []string
}

func newFakeSeedRepo() *fakeSeedRepo {
	return &fakeSeedRepo{rows: map[string]*model.SeedUsage{}}
}

func (f *fakeSeedRepo) withSeed(seed string, lastUsed *time.Time) *fakeSeedRepo {
	f.rows[seed] = &ent.SeedUsage{Seed: seed, LastUsedAt: lastUsed}
	return f
}

func (f *fakeSeedRepo) GetBySeed(ctx context.Context, seed string) (*model.SeedUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[seed]; ok {
		return row, nil
	}
	return nil, model.NewNotFoundError(errors.New(seed))
}

func (f *fakeSeedRepo) Ensure(ctx context.Context, seed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[seed]; !ok {
		f.rows[seed] = &ent.SeedUsage{Seed: seed}
	}
	return nil
}

func (f *fakeSeedRepo) Touch(ctx context.Context, seed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, seed)
	now := time.Now()
	if row, ok := f.rows[seed]; ok {
		row.UsageCount++
		row.LastUsedAt = &now
	} else {
		f.rows[seed] = &ent.SeedUsage{Seed: seed, UsageCount: 1, LastUsedAt: &now}
	}
	return nil
}

func (f *fakeSeedRepo) ListCandidates(ctx context.Context, limit int, window time.Duration) ([]*model.SeedUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.SeedUsage
	for _, row := range f.rows {
		if row.LastUsedAt == nil || time.Since(*row.LastUsedAt) >= window {
			out = append(out, row)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeSeedRepo) CountCandidates(ctx context.Context, window time.Duration) (int, error) {
	rows, err := f.ListCandidates(ctx, len(f.rows)+1, window)
	return len(rows), err
}

// fakeLogRepo records created collection logs.
type fakeLogRepo struct {
	mu   sync.Mutex
	logs []*model.CollectionLog
}

func (f *fakeLogRepo) Create(ctx context.Context, log *model.CollectionLog) (*model.CollectionLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeLogRepo) List(ctx context.Context, limit int) ([]*model.CollectionLog, error) {
	return f.logs, nil
}

func (f *fakeLogRepo) GetLatest(ctx context.Context, jobName string) (*model.CollectionLog, error) {
	return nil, model.NewNotFoundError(errors.New(jobName))
}

// fakeAds serves canned expansions keyed by the first hint of a call.
type fakeAds struct {
	mu        sync.Mutex
	responses map[string][]*model.RelatedKeyword
	errs      map[string]error
	calls     int
	groups    [][]string
}

func (f *fakeAds) RelatedKeywords(ctx context.Context, seeds []string) ([]*model.RelatedKeyword, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.groups = append(f.groups, append([]string(nil), seeds...))
	seed := seeds[0]
	if err, ok := f.errs[seed]; ok {
		return nil, nil, err
	}
	return f.responses[seed], []byte(`{"keywordList":[]}`), nil
}

// fakeNotifier records run summaries and pool alerts.
type fakeNotifier struct {
	mu        sync.Mutex
	summaries int
	alerts    []string
}

func (f *fakeNotifier) SendCollectionSummary(jobName string, processed, newCount, updated, skipped, failed int, duration time.Duration, errs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries++
	return nil
}

func (f *fakeNotifier) SendPoolExhaustedAlert(provider string, credentialNames []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, provider)
	return nil
}

func related(text string, avg int) *model.RelatedKeyword {
	return &model.RelatedKeyword{
		Keyword:             text,
		MonthlyPcSearch:     avg / 2,
		MonthlyMobileSearch: avg - avg/2,
		AvgMonthlySearch:    avg,
	}
}

func newCollector(t *testing.T, kw *fakeKeywordRepo, seedRepo *fakeSeedRepo, logRepo *fakeLogRepo, ads *fakeAds) *collector.Collector {
	return newCollectorWithNotifier(t, kw, seedRepo, logRepo, ads, nil)
}

func newCollectorWithNotifier(t *testing.T, kw *fakeKeywordRepo, seedRepo *fakeSeedRepo, logRepo *fakeLogRepo, ads *fakeAds, notifier collector.Notifier) *collector.Collector {
	t.Helper()
	testutil.ReadConfig()

	retry := &collector.RetryPolicy{
		BatchSize:         5,
		Delay:             time.Millisecond,
		MaxRetries:        2,
		BackoffMultiplier: 2,
		RateLimitCooldown: time.Millisecond,
	}
	return collector.New(kw, seedRepo, logRepo, ads, retry.WithLogger(zap.NewNop().Sugar()), nil, notifier, nil, zap.NewNop().Sugar())
}

func TestCollectSeedsFreshnessClassification(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{responses: map[string][]*model.RelatedKeyword{
		"fresh-keyword": {related("camp stove", 900)},
		"stale-keyword": {related("camp lantern", 400)},
	}}

	// Seed expanded 10 days ago: inside the 30-day window, skipped
	// without an API call.
	tenDaysAgo := time.Now().Add(-10 * 24 * time.Hour)
	seedRepo.withSeed("fresh-keyword", &tenDaysAgo)

	// Seed expanded 40 days ago: stale, re-fetched.
	fortyDaysAgo := time.Now().Add(-40 * 24 * time.Hour)
	seedRepo.withSeed("stale-keyword", &fortyDaysAgo)

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	outcome, err := c.CollectSeeds(context.Background(), []string{"fresh-keyword", "stale-keyword"}, 2, 0, nil)
	require.NoError(t, err)

	require.Equal(t, 2, outcome.Processed)
	require.Equal(t, 1, outcome.SkippedSeeds, "seed inside the freshness window is skipped")
	require.Equal(t, 1, outcome.NewKeywords, "stale seed is re-expanded and yields a new keyword")
	require.Equal(t, 1, ads.calls, "the fresh seed never reaches the API")
	require.ElementsMatch(t, []string{"fresh-keyword", "stale-keyword"}, seedRepo.touched,
		"usage is recorded for every processed seed")
}

func TestCollectSeedsStaleKeywordRowIsUpdatedNotInserted(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{responses: map[string][]*model.RelatedKeyword{
		"seed": {related("old keyword", 700)},
	}}

	// Existing row dated 40 days ago: classified update, not new.
	kwRepo.rows["old keyword"] = &ent.Keyword{
		ID:        model.ID("KWold"),
		Keyword:   "old keyword",
		CreatedAt: time.Now().Add(-40 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-40 * 24 * time.Hour),
	}

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	outcome, err := c.CollectSeeds(context.Background(), []string{"seed"}, 1, 0, nil)
	require.NoError(t, err)

	require.Zero(t, outcome.NewKeywords)
	require.Equal(t, 1, outcome.UpdatedKeywords)
	require.Equal(t, 1, kwRepo.updates)
	require.Zero(t, kwRepo.upserts)
}

func TestCollectSeedsFreshKeywordRowIsLeftAlone(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{responses: map[string][]*model.RelatedKeyword{
		"seed": {related("recent keyword", 700)},
	}}

	kwRepo.rows["recent keyword"] = &ent.Keyword{
		ID:        model.ID("KWrecent"),
		Keyword:   "recent keyword",
		CreatedAt: time.Now().Add(-10 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-10 * 24 * time.Hour),
	}

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	outcome, err := c.CollectSeeds(context.Background(), []string{"seed"}, 1, 0, nil)
	require.NoError(t, err)

	require.Zero(t, outcome.NewKeywords)
	require.Zero(t, outcome.UpdatedKeywords)
	require.Zero(t, kwRepo.updates)
	require.Zero(t, kwRepo.upserts)
}

func TestCollectSeedsFailedSeedDoesNotAbortRun(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{
		responses: map[string][]*model.RelatedKeyword{
			"good": {related("good keyword", 100)},
		},
		errs: map[string]error{
			"bad": &model.TransientError{Err: errors.New("provider down")},
		},
	}

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	outcome, err := c.CollectSeeds(context.Background(), []string{"bad", "good"}, 2, 0, nil)
	require.NoError(t, err)

	require.Equal(t, 2, outcome.Processed)
	require.Equal(t, []string{"bad"}, outcome.FailedSeeds)
	require.Equal(t, 1, outcome.NewKeywords)
	require.Equal(t, 1, outcome.APIFailureCount)
}

func TestCollectSeedsStopsWhenPoolExhausted(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{errs: map[string]error{
		"s1": &model.NoCredentialAvailableError{Provider: "searchad"},
	}}

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	outcome, err := c.CollectSeeds(context.Background(), []string{"s1", "s2", "s3"}, 1, 0, nil)
	require.NoError(t, err)

	require.True(t, outcome.PoolExhausted)
	require.Equal(t, 1, outcome.Processed, "run stops at the first pool-exhausted chunk")
}

func TestCollectSeedsStopsAtTarget(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{responses: map[string][]*model.RelatedKeyword{
		"s1": {related("k1", 10), related("k2", 20)},
		"s2": {related("k3", 30)},
		"s3": {related("k4", 40)},
	}}

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	outcome, err := c.CollectSeeds(context.Background(), []string{"s1", "s2", "s3"}, 1, 2, nil)
	require.NoError(t, err)

	require.GreaterOrEqual(t, outcome.NewKeywords, 2)
	require.Equal(t, 1, outcome.Processed, "run stops once the new-keyword target is reached")
}

func TestPoolExhaustedAlertSentOncePerEpisode(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{errs: map[string]error{
		"s1": &model.NoCredentialAvailableError{Provider: "searchad"},
	}}
	notifier := &fakeNotifier{}

	c := newCollectorWithNotifier(t, kwRepo, seedRepo, logRepo, ads, notifier)

	outcome, err := c.CollectSeeds(context.Background(), []string{"s1"}, 1, 0, nil)
	require.NoError(t, err)
	require.True(t, outcome.PoolExhausted)

	// A second run against the still-empty pool must not send another mail.
	_, err = c.CollectSeeds(context.Background(), []string{"s1"}, 1, 0, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"searchad"}, notifier.alerts, "one alert per exhaustion episode")
}

func TestPoolExhaustedAlertRearmsAfterSuccess(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{
		responses: map[string][]*model.RelatedKeyword{
			"ok": {related("k", 10)},
		},
		errs: map[string]error{
			"s1": &model.NoCredentialAvailableError{Provider: "searchad"},
		},
	}
	notifier := &fakeNotifier{}

	c := newCollectorWithNotifier(t, kwRepo, seedRepo, logRepo, ads, notifier)

	_, err := c.CollectSeeds(context.Background(), []string{"s1"}, 1, 0, nil)
	require.NoError(t, err)

	// A successful call means the pool recovered; the next exhaustion is a
	// new episode and alerts again.
	_, err = c.CollectSeeds(context.Background(), []string{"ok"}, 1, 0, nil)
	require.NoError(t, err)

	_, err = c.CollectSeeds(context.Background(), []string{"s1"}, 1, 0, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"searchad", "searchad"}, notifier.alerts)
}

func TestCollectGroupedBatchesHintKeywords(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{responses: map[string][]*model.RelatedKeyword{
		"s1": {related("k1", 100)},
		"s6": {related("k2", 200)},
	}}

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	seeds := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7"}
	outcome, err := c.CollectGrouped(context.Background(), seeds, nil)
	require.NoError(t, err)

	require.Equal(t, 2, ads.calls, "seven seeds fit in two hint groups")
	require.Equal(t, [][]string{
		{"s1", "s2", "s3", "s4", "s5"},
		{"s6", "s7"},
	}, ads.groups)

	require.Equal(t, 7, outcome.Processed)
	require.Equal(t, 2, outcome.NewKeywords)
	require.Empty(t, outcome.FailedSeeds)

	// Rows carry the hint list that produced them.
	require.Equal(t, "s1,s2,s3,s4,s5", kwRepo.rows["k1"].Seed)
	require.Equal(t, "s6,s7", kwRepo.rows["k2"].Seed)

	require.ElementsMatch(t, seeds, seedRepo.touched, "usage is recorded for every seed")
	require.Len(t, logRepo.logs, 1)
	require.Equal(t, "manual_collect", logRepo.logs[0].JobName)
}

func TestCollectGroupedSkipsFreshSeeds(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{responses: map[string][]*model.RelatedKeyword{
		"stale": {related("k1", 100)},
	}}

	tenDaysAgo := time.Now().Add(-10 * 24 * time.Hour)
	seedRepo.withSeed("fresh", &tenDaysAgo)

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	outcome, err := c.CollectGrouped(context.Background(), []string{"fresh", "stale"}, nil)
	require.NoError(t, err)

	require.Equal(t, 1, ads.calls)
	require.Equal(t, [][]string{{"stale"}}, ads.groups, "fresh seeds never reach the provider")
	require.Equal(t, 1, outcome.SkippedSeeds)
	require.Equal(t, 1, outcome.NewKeywords)
}

func TestCollectGroupedStopsWhenPoolExhausted(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{errs: map[string]error{
		"s1": &model.NoCredentialAvailableError{Provider: "searchad"},
	}}
	notifier := &fakeNotifier{}

	c := newCollectorWithNotifier(t, kwRepo, seedRepo, logRepo, ads, notifier)

	seeds := []string{"s1", "s2", "s3", "s4", "s5", "s6"}
	outcome, err := c.CollectGrouped(context.Background(), seeds, nil)
	require.NoError(t, err)

	require.Equal(t, 1, ads.calls, "pool exhaustion skips the remaining groups")
	require.True(t, outcome.PoolExhausted)
	require.Equal(t, seeds, outcome.FailedSeeds)
	require.Equal(t, []string{"searchad"}, notifier.alerts)
}

func TestRunBatchReportsRemaining(t *testing.T) {
	kwRepo := newFakeKeywordRepo()
	seedRepo := newFakeSeedRepo()
	logRepo := &fakeLogRepo{}
	ads := &fakeAds{responses: map[string][]*model.RelatedKeyword{
		"s1": {related("k1", 10)},
	}}

	seedRepo.withSeed("s1", nil)

	c := newCollector(t, kwRepo, seedRepo, logRepo, ads)

	res, err := c.RunBatch(context.Background(), model.CollectBatchInput{Limit: 1, Concurrent: 1})
	require.NoError(t, err)

	require.True(t, res.Success)
	require.Equal(t, 1, res.Processed)
	require.Equal(t, 1, res.TotalNewKeywords)
	// s1 was just touched; k1 joined the backlog as an unused seed.
	require.Equal(t, 1, res.Remaining)
	require.Len(t, logRepo.logs, 1, "a run record is persisted")
}
