package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/jobs"
	"kwlab-go-backend/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRegistry(t *testing.T, maxRunning int) *jobs.Registry {
	t.Helper()
	testutil.ReadConfig()
	return jobs.NewRegistry(zap.NewNop().Sugar()).WithMaxRunning(maxRunning)
}

func waitForStatus(t *testing.T, r *jobs.Registry, id model.ID, want model.JobStatus) *model.CollectionJobView {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		v, err := r.Get(id)
		require.NoError(t, err)
		if v.Status == want {
			return v
		}
		select {
		case <-deadline:
			t.Fatalf("job %s never reached %s (now %s)", id, want, v.Status)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestEnqueueRunsAndCompletes(t *testing.T) {
	r := newRegistry(t, 1)
	r.Register(model.JobTypeManualCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		h.Progress(1, 2, "s1")
		h.Progress(2, 2, "s2")
		return map[string]interface{}{"processed": 2}, nil
	})

	v, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{Seeds: []string{"s1", "s2"}})
	require.NoError(t, err)

	done := waitForStatus(t, r, v.ID, model.JobStatusCompleted)
	require.Equal(t, 2, done.Progress)
	require.Equal(t, 2, done.Total)
	require.Equal(t, map[string]interface{}{"processed": 2}, done.Result)
	require.NotNil(t, done.StartedAt)
	require.NotNil(t, done.CompletedAt)
}

func TestEnqueueUnknownTypeRejected(t *testing.T) {
	r := newRegistry(t, 1)

	_, err := r.Enqueue(model.JobTypeDocCount, model.JobParams{})

	var invalid *model.InvalidParamError
	require.ErrorAs(t, err, &invalid)
}

func TestRunnerFailureMarksJobFailed(t *testing.T) {
	r := newRegistry(t, 1)
	r.Register(model.JobTypeAutoCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		return nil, errors.New("provider down")
	})

	v, err := r.Enqueue(model.JobTypeAutoCollect, model.JobParams{})
	require.NoError(t, err)

	done := waitForStatus(t, r, v.ID, model.JobStatusFailed)
	require.Equal(t, "provider down", done.Error)
}

func TestConcurrencyCapQueuesAndPromotesOldestPending(t *testing.T) {
	r := newRegistry(t, 1)

	release := make(chan struct{})
	r.Register(model.JobTypeManualCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		<-release
		return nil, nil
	})
	r.Register(model.JobTypeDocCount, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		return nil, nil
	})

	first, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{})
	require.NoError(t, err)
	waitForStatus(t, r, first.ID, model.JobStatusRunning)

	second, err := r.Enqueue(model.JobTypeDocCount, model.JobParams{})
	require.NoError(t, err)
	third, err := r.Enqueue(model.JobTypeDocCount, model.JobParams{})
	require.NoError(t, err)

	got, err := r.Get(second.ID)
	require.NoError(t, err)
	require.Equal(t, model.JobStatusPending, got.Status, "cap of one keeps later jobs pending")

	close(release)

	waitForStatus(t, r, second.ID, model.JobStatusCompleted)
	waitForStatus(t, r, third.ID, model.JobStatusCompleted)

	// The older pending job started before the newer one.
	secondDone, _ := r.Get(second.ID)
	thirdDone, _ := r.Get(third.ID)
	require.NotNil(t, secondDone.StartedAt)
	require.NotNil(t, thirdDone.StartedAt)
	require.False(t, thirdDone.StartedAt.Before(*secondDone.StartedAt))
}

func TestCancelPendingJobIsImmediate(t *testing.T) {
	r := newRegistry(t, 1)

	release := make(chan struct{})
	defer close(release)
	r.Register(model.JobTypeManualCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		<-release
		return nil, nil
	})

	first, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{})
	require.NoError(t, err)
	waitForStatus(t, r, first.ID, model.JobStatusRunning)

	pending, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{})
	require.NoError(t, err)

	require.NoError(t, r.Cancel(pending.ID))

	got, err := r.Get(pending.ID)
	require.NoError(t, err)
	require.Equal(t, model.JobStatusCancelled, got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestCancelRunningJobIsCooperative(t *testing.T) {
	r := newRegistry(t, 1)

	started := make(chan struct{})
	r.Register(model.JobTypeManualCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		close(started)
		for !h.Cancelled() {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Millisecond):
			}
		}
		return nil, nil
	})

	v, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{})
	require.NoError(t, err)
	<-started

	require.NoError(t, r.Cancel(v.ID))

	done := waitForStatus(t, r, v.ID, model.JobStatusCancelled)
	require.NotNil(t, done.CompletedAt)
}

func TestCancelTerminalJobRejected(t *testing.T) {
	r := newRegistry(t, 1)
	r.Register(model.JobTypeManualCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		return nil, nil
	})

	v, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{})
	require.NoError(t, err)
	waitForStatus(t, r, v.ID, model.JobStatusCompleted)

	err = r.Cancel(v.ID)
	var invalid *model.InvalidParamError
	require.ErrorAs(t, err, &invalid)
}

func TestProgressNeverExceedsTotal(t *testing.T) {
	r := newRegistry(t, 1)
	r.Register(model.JobTypeManualCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		h.Progress(10, 3, "overshoot")
		return nil, nil
	})

	v, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{})
	require.NoError(t, err)

	done := waitForStatus(t, r, v.ID, model.JobStatusCompleted)
	require.Equal(t, 3, done.Total)
	require.LessOrEqual(t, done.Progress, done.Total)
}

func TestCleanupOldJobsRemovesOnlyStaleTerminal(t *testing.T) {
	r := newRegistry(t, 2)

	release := make(chan struct{})
	defer close(release)
	r.Register(model.JobTypeManualCollect, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		return nil, nil
	})
	r.Register(model.JobTypeDocCount, func(ctx context.Context, h *jobs.Handle) (map[string]interface{}, error) {
		<-release
		return nil, nil
	})

	finished, err := r.Enqueue(model.JobTypeManualCollect, model.JobParams{})
	require.NoError(t, err)
	waitForStatus(t, r, finished.ID, model.JobStatusCompleted)

	runningJob, err := r.Enqueue(model.JobTypeDocCount, model.JobParams{})
	require.NoError(t, err)
	waitForStatus(t, r, runningJob.ID, model.JobStatusRunning)

	// Nothing is older than a day yet.
	require.Zero(t, r.CleanupOldJobs(24*time.Hour))

	// With a zero max age the completed job goes, the running one stays.
	time.Sleep(5 * time.Millisecond)
	require.Equal(t, 1, r.CleanupOldJobs(0))

	_, err = r.Get(finished.ID)
	var notFound *model.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = r.Get(runningJob.ID)
	require.NoError(t, err)
}
