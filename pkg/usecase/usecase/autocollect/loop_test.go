package autocollect_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/autocollect"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBatcher struct {
	mu      sync.Mutex
	calls   int
	inputs  []model.CollectBatchInput
	results []*model.CollectBatchResult
	errs    []error
	delay   time.Duration
}

func (f *fakeBatcher) RunBatch(ctx context.Context, input model.CollectBatchInput) (*model.CollectBatchResult, error) {
	f.mu.Lock()
	idx := f.calls
	f.calls++
	f.inputs = append(f.inputs, input)
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	return &model.CollectBatchResult{Success: true}, nil
}

func (f *fakeBatcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeBatcher) inputsSeen() []model.CollectBatchInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.CollectBatchInput(nil), f.inputs...)
}

type recordingListener struct {
	mu       sync.Mutex
	finished int
	failed   int
	target   []int
	stopped  []string
}

func (r *recordingListener) BatchFinished(*model.CollectBatchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++
}

func (r *recordingListener) BatchFailed(error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
}

func (r *recordingListener) TargetReached(totalNew, target int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = append(r.target, totalNew)
}

func (r *recordingListener) Stopped(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = append(r.stopped, reason)
}

type recordingNotifier struct {
	mu      sync.Mutex
	reasons []string
}

func (n *recordingNotifier) SendAutoCollectStopped(reason string, processed, totalNew int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reasons = append(n.reasons, reason)
	return nil
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if cond() {
			return
		}
		select {
		case <-deadline:
			t.Fatal(msg)
		case <-time.After(2 * time.Millisecond):
		}
	}
}

func testConfig() autocollect.Config {
	return autocollect.Config{
		Limit:            10,
		Concurrent:       2,
		Interval:         5 * time.Millisecond,
		BatchTimeout:     time.Second,
		TimeoutThreshold: 3,
	}
}

func TestStartRunsFirstBatchImmediatelyThenTicks(t *testing.T) {
	batcher := &fakeBatcher{}
	loop := autocollect.NewLoop(batcher, nil, nil, zap.NewNop().Sugar())
	defer loop.Stop()

	require.NoError(t, loop.Start(testConfig()))

	eventually(t, func() bool { return batcher.callCount() >= 3 },
		"loop never ran the first batch plus ticks")
}

func TestStartTwiceRejected(t *testing.T) {
	loop := autocollect.NewLoop(&fakeBatcher{}, nil, nil, zap.NewNop().Sugar())
	defer loop.Stop()

	require.NoError(t, loop.Start(testConfig()))

	err := loop.Start(testConfig())
	var invalid *model.InvalidParamError
	require.ErrorAs(t, err, &invalid)
}

func TestStopHaltsScheduling(t *testing.T) {
	batcher := &fakeBatcher{}
	loop := autocollect.NewLoop(batcher, nil, nil, zap.NewNop().Sugar())

	require.NoError(t, loop.Start(testConfig()))
	eventually(t, func() bool { return batcher.callCount() >= 1 }, "first batch never ran")

	loop.Stop()
	require.False(t, loop.Running())

	n := batcher.callCount()
	time.Sleep(30 * time.Millisecond)
	require.LessOrEqual(t, batcher.callCount(), n+1, "batches kept running after Stop")
}

func TestSlowBatchSkipsOverlappingTicks(t *testing.T) {
	batcher := &fakeBatcher{delay: 40 * time.Millisecond}
	loop := autocollect.NewLoop(batcher, nil, nil, zap.NewNop().Sugar())
	defer loop.Stop()

	require.NoError(t, loop.Start(testConfig()))

	time.Sleep(60 * time.Millisecond)
	require.LessOrEqual(t, batcher.callCount(), 3,
		"ticks during an in-flight batch must be skipped, not queued")
}

func TestConsecutiveTimeoutsStopLoopAndNotify(t *testing.T) {
	timeout := context.DeadlineExceeded
	batcher := &fakeBatcher{errs: []error{timeout, timeout, timeout}}
	listener := &recordingListener{}
	notifier := &recordingNotifier{}
	loop := autocollect.NewLoop(batcher, notifier, listener, zap.NewNop().Sugar())

	require.NoError(t, loop.Start(testConfig()))

	eventually(t, func() bool { return !loop.Running() },
		"loop did not stop after three consecutive timeouts")

	notifier.mu.Lock()
	require.Len(t, notifier.reasons, 1)
	require.Contains(t, notifier.reasons[0], "3 consecutive")
	notifier.mu.Unlock()

	require.Equal(t, 3, batcher.callCount())
}

func TestSuccessResetsTimeoutCounter(t *testing.T) {
	timeout := context.DeadlineExceeded
	batcher := &fakeBatcher{errs: []error{timeout, timeout, nil, timeout, timeout}}
	loop := autocollect.NewLoop(batcher, nil, nil, zap.NewNop().Sugar())
	defer loop.Stop()

	require.NoError(t, loop.Start(testConfig()))

	eventually(t, func() bool { return batcher.callCount() >= 5 },
		"loop stopped early even though a success reset the counter")
	require.True(t, loop.Running())
}

func TestNonTimeoutFailureDoesNotStopLoop(t *testing.T) {
	batcher := &fakeBatcher{errs: []error{
		errors.New("boom"), errors.New("boom"), errors.New("boom"), errors.New("boom"),
	}}
	listener := &recordingListener{}
	loop := autocollect.NewLoop(batcher, nil, listener, zap.NewNop().Sugar())
	defer loop.Stop()

	require.NoError(t, loop.Start(testConfig()))

	eventually(t, func() bool { return batcher.callCount() >= 4 }, "loop stopped on plain failures")
	require.True(t, loop.Running())
}

func TestTargetReachedNotifiesOnceAndKeepsRunning(t *testing.T) {
	batcher := &fakeBatcher{results: []*model.CollectBatchResult{
		{Success: true, Processed: 5, TotalNewKeywords: 60},
		{Success: true, Processed: 5, TotalNewKeywords: 60},
		{Success: true, Processed: 5, TotalNewKeywords: 60},
	}}
	listener := &recordingListener{}
	loop := autocollect.NewLoop(batcher, nil, listener, zap.NewNop().Sugar())
	defer loop.Stop()

	cfg := testConfig()
	cfg.Limit = 0
	cfg.TargetKeywords = 100
	require.NoError(t, loop.Start(cfg))

	eventually(t, func() bool { return batcher.callCount() >= 3 },
		"loop stopped after reaching the target")
	require.True(t, loop.Running(), "reaching the target does not stop the loop")

	listener.mu.Lock()
	require.Len(t, listener.target, 1, "target notification fires exactly once")
	require.GreaterOrEqual(t, listener.target[0], 100)
	listener.mu.Unlock()

	snap := loop.Snapshot()
	require.True(t, snap.TargetReached)
	require.GreaterOrEqual(t, snap.TotalNewKeywords, 100)
}

func TestSeedLimitStopsLoop(t *testing.T) {
	batcher := &fakeBatcher{results: []*model.CollectBatchResult{
		{Success: true, Processed: 5},
		{Success: true, Processed: 5},
		{Success: true, Processed: 5},
	}}
	listener := &recordingListener{}
	loop := autocollect.NewLoop(batcher, nil, listener, zap.NewNop().Sugar())

	require.NoError(t, loop.Start(testConfig()))

	eventually(t, func() bool { return !loop.Running() },
		"loop kept running past the seed limit")

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 2, batcher.callCount(), "limit 10 with batches of 5 means two rounds")

	inputs := batcher.inputsSeen()
	require.Equal(t, 10, inputs[0].Limit)
	require.Equal(t, 5, inputs[1].Limit, "each round asks only for the remaining limit")

	require.Equal(t, 10, loop.Snapshot().ProcessedCount)

	eventually(t, func() bool {
		listener.mu.Lock()
		defer listener.mu.Unlock()
		for _, r := range listener.stopped {
			if r == "seed limit reached" {
				return true
			}
		}
		return false
	}, "listener never saw the limit stop")
}

func TestSnapshotAccumulators(t *testing.T) {
	batcher := &fakeBatcher{results: []*model.CollectBatchResult{
		{Success: true, Processed: 4, TotalNewKeywords: 7},
	}}
	loop := autocollect.NewLoop(batcher, nil, nil, zap.NewNop().Sugar())
	defer loop.Stop()

	cfg := testConfig()
	cfg.Interval = time.Hour
	require.NoError(t, loop.Start(cfg))

	eventually(t, func() bool { return loop.Snapshot().BatchesRun >= 1 }, "first batch never finished")

	snap := loop.Snapshot()
	require.Equal(t, 4, snap.ProcessedCount)
	require.Equal(t, 7, snap.TotalNewKeywords)
	require.True(t, snap.Running)
}
