// Package jobs tracks long-running collection jobs in memory. Jobs are
// process-scoped: a restart loses the registry, which is acceptable
// because every durable effect (keywords, logs) lands in the database as
// the job runs.
package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"kwlab-go-backend/config"
	"kwlab-go-backend/ent/schema/ulid"
	"kwlab-go-backend/pkg/const/globalid"
	"kwlab-go-backend/pkg/entity/model"

	"go.uber.org/zap"
)

// Runner executes one job. It must check h.Cancelled() between units of
// work and return promptly once it reports true.
type Runner func(ctx context.Context, h *Handle) (map[string]interface{}, error)

type record struct {
	id          model.ID
	jobType     model.JobType
	status      model.JobStatus
	params      model.JobParams
	progress    int
	total       int
	current     string
	message     string
	result      map[string]interface{}
	err         string
	createdAt   time.Time
	startedAt   *time.Time
	completedAt *time.Time

	cancel          context.CancelFunc
	cancelRequested bool
}

// Registry is the mutex-guarded job table. At most maxRunning jobs run
// concurrently; the rest queue as pending and start oldest-first as
// running jobs finish.
type Registry struct {
	mu         sync.Mutex
	jobs       map[model.ID]*record
	runners    map[model.JobType]Runner
	running    int
	maxRunning int
	logger     *zap.SugaredLogger
}

func NewRegistry(logger *zap.SugaredLogger) *Registry {
	maxRunning := config.C.Collect.MaxConcurrentJobs
	if maxRunning <= 0 {
		maxRunning = 2
	}
	return &Registry{
		jobs:       map[model.ID]*record{},
		runners:    map[model.JobType]Runner{},
		maxRunning: maxRunning,
		logger:     logger,
	}
}

// WithMaxRunning overrides the concurrent-job cap. Useful for tests that
// construct the registry directly instead of from config.
func (r *Registry) WithMaxRunning(n int) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > 0 {
		r.maxRunning = n
	}
	return r
}

// Register binds a runner to a job type. Must be called before Enqueue
// sees that type.
func (r *Registry) Register(jobType model.JobType, runner Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runners[jobType] = runner
}

// Enqueue creates a job. It starts immediately when a running slot is
// free, otherwise it waits as pending.
func (r *Registry) Enqueue(jobType model.JobType, params model.JobParams) (*model.CollectionJobView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runners[jobType]; !ok {
		return nil, model.NewInvalidParamError(fmt.Errorf("unknown job type %q", jobType))
	}

	rec := &record{
		id:        ulid.MustNew(globalid.New().CollectionJob.Prefix),
		jobType:   jobType,
		status:    model.JobStatusPending,
		params:    params,
		createdAt: time.Now(),
	}
	r.jobs[rec.id] = rec

	if r.running < r.maxRunning {
		r.startLocked(rec)
	} else {
		r.logger.Infow("job queued", "id", rec.id, "type", jobType, "running", r.running)
	}

	return viewOf(rec), nil
}

// Get returns a snapshot of one job.
func (r *Registry) Get(id model.ID) (*model.CollectionJobView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.jobs[id]
	if !ok {
		return nil, model.NewNotFoundError(fmt.Errorf("job %s", id))
	}
	return viewOf(rec), nil
}

// List returns snapshots of all jobs, newest first.
func (r *Registry) List() []*model.CollectionJobView {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.CollectionJobView, 0, len(r.jobs))
	for _, rec := range r.jobs {
		out = append(out, viewOf(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Cancel requests cancellation. A pending job goes terminal immediately;
// a running job is asked to stop and goes terminal when its runner
// returns. Cancelling a terminal job is an error.
func (r *Registry) Cancel(id model.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.jobs[id]
	if !ok {
		return model.NewNotFoundError(fmt.Errorf("job %s", id))
	}

	switch rec.status {
	case model.JobStatusPending:
		now := time.Now()
		rec.status = model.JobStatusCancelled
		rec.completedAt = &now
		return nil
	case model.JobStatusRunning:
		rec.cancelRequested = true
		if rec.cancel != nil {
			rec.cancel()
		}
		return nil
	default:
		return model.NewInvalidParamError(fmt.Errorf("job %s already %s", id, rec.status))
	}
}

// CleanupOldJobs removes terminal jobs that completed more than maxAge
// ago and returns how many were removed.
func (r *Registry) CleanupOldJobs(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-maxAge)
	for id, rec := range r.jobs {
		if rec.status.Terminal() && rec.completedAt != nil && rec.completedAt.Before(cutoff) {
			delete(r.jobs, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Infow("cleaned up old jobs", "removed", removed)
	}
	return removed
}

// startLocked transitions a pending record to running and launches its
// runner. Caller holds r.mu.
func (r *Registry) startLocked(rec *record) {
	runner := r.runners[rec.jobType]

	now := time.Now()
	rec.status = model.JobStatusRunning
	rec.startedAt = &now

	ctx, cancel := context.WithCancel(context.Background())
	rec.cancel = cancel
	r.running++

	r.logger.Infow("job started", "id", rec.id, "type", rec.jobType)

	go func() {
		result, err := runner(ctx, &Handle{registry: r, id: rec.id})
		r.finish(rec.id, result, err)
	}()
}

// finish records the runner's outcome and promotes the oldest pending job.
func (r *Registry) finish(id model.ID, result map[string]interface{}, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.jobs[id]
	if !ok {
		// Cleaned up while running; just release the slot.
		r.running--
		r.promoteLocked()
		return
	}

	now := time.Now()
	rec.completedAt = &now
	rec.result = result

	switch {
	case rec.cancelRequested:
		rec.status = model.JobStatusCancelled
	case err != nil:
		rec.status = model.JobStatusFailed
		rec.err = err.Error()
	default:
		rec.status = model.JobStatusCompleted
	}
	if rec.cancel != nil {
		rec.cancel()
		rec.cancel = nil
	}
	r.running--

	r.logger.Infow("job finished", "id", rec.id, "type", rec.jobType, "status", rec.status)

	r.promoteLocked()
}

// promoteLocked starts the oldest pending job when a slot is free.
// Caller holds r.mu.
func (r *Registry) promoteLocked() {
	if r.running >= r.maxRunning {
		return
	}

	var oldest *record
	for _, rec := range r.jobs {
		if rec.status != model.JobStatusPending {
			continue
		}
		if oldest == nil || rec.createdAt.Before(oldest.createdAt) {
			oldest = rec
		}
	}
	if oldest != nil {
		r.startLocked(oldest)
	}
}

func viewOf(rec *record) *model.CollectionJobView {
	v := &model.CollectionJobView{
		ID:        rec.id,
		Type:      rec.jobType,
		Status:    rec.status,
		Progress:  rec.progress,
		Total:     rec.total,
		Current:   rec.current,
		Message:   rec.message,
		Error:     rec.err,
		CreatedAt: rec.createdAt,
	}
	if rec.result != nil {
		v.Result = make(map[string]interface{}, len(rec.result))
		for k, val := range rec.result {
			v.Result[k] = val
		}
	}
	if rec.startedAt != nil {
		t := *rec.startedAt
		v.StartedAt = &t
	}
	if rec.completedAt != nil {
		t := *rec.completedAt
		v.CompletedAt = &t
	}
	return v
}

// Handle is the runner's window into its own record.
type Handle struct {
	registry *Registry
	id       model.ID
}

// ID returns the job's identifier.
func (h *Handle) ID() model.ID { return h.id }

// Params returns the job's parameters.
func (h *Handle) Params() model.JobParams {
	h.registry.mu.Lock()
	defer h.registry.mu.Unlock()
	if rec, ok := h.registry.jobs[h.id]; ok {
		return rec.params
	}
	return model.JobParams{}
}

// Progress reports progress. Values are clamped so progress never
// exceeds total.
func (h *Handle) Progress(progress, total int, current string) {
	h.registry.mu.Lock()
	defer h.registry.mu.Unlock()

	rec, ok := h.registry.jobs[h.id]
	if !ok {
		return
	}
	if total < 0 {
		total = 0
	}
	if progress < 0 {
		progress = 0
	}
	if progress > total {
		progress = total
	}
	rec.progress = progress
	rec.total = total
	rec.current = current
}

// Message sets a free-form status line.
func (h *Handle) Message(msg string) {
	h.registry.mu.Lock()
	defer h.registry.mu.Unlock()
	if rec, ok := h.registry.jobs[h.id]; ok {
		rec.message = msg
	}
}

// Cancelled reports whether cancellation was requested. Runners check
// this between units of work.
func (h *Handle) Cancelled() bool {
	h.registry.mu.Lock()
	defer h.registry.mu.Unlock()
	if rec, ok := h.registry.jobs[h.id]; ok {
		return rec.cancelRequested
	}
	return true
}
