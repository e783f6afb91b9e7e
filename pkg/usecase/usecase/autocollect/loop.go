// Package autocollect runs collection batches on a fixed interval until
// stopped or until repeated batch timeouts indicate the provider is not
// coming back.
package autocollect

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kwlab-go-backend/config"
	"kwlab-go-backend/pkg/entity/model"

	"go.uber.org/zap"
)

// Batcher executes one collection batch.
type Batcher interface {
	RunBatch(ctx context.Context, input model.CollectBatchInput) (*model.CollectBatchResult, error)
}

// Listener observes loop events. Any method may be a no-op.
type Listener interface {
	BatchFinished(res *model.CollectBatchResult)
	BatchFailed(err error)
	TargetReached(totalNew, target int)
	Stopped(reason string)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) BatchFinished(*model.CollectBatchResult) {}
func (NopListener) BatchFailed(error)                       {}
func (NopListener) TargetReached(int, int)                  {}
func (NopListener) Stopped(string)                          {}

// Notifier alerts an operator that the loop stopped on its own.
type Notifier interface {
	SendAutoCollectStopped(reason string, processed, totalNew int) error
}

// Config controls one loop run.
type Config struct {
	Limit            int
	Concurrent       int
	TargetKeywords   int
	Interval         time.Duration
	BatchTimeout     time.Duration
	TimeoutThreshold int
}

// ConfigFromApp fills loop timing from application config.
func ConfigFromApp(limit, concurrent, targetKeywords int) Config {
	cfg := config.C.AutoCollect

	interval := time.Duration(cfg.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	batchTimeout := time.Duration(cfg.BatchTimeoutSeconds) * time.Second
	if batchTimeout <= 0 {
		batchTimeout = 30 * time.Minute
	}
	threshold := cfg.TimeoutThreshold
	if threshold <= 0 {
		threshold = 3
	}

	return Config{
		Limit:            limit,
		Concurrent:       concurrent,
		TargetKeywords:   targetKeywords,
		Interval:         interval,
		BatchTimeout:     batchTimeout,
		TimeoutThreshold: threshold,
	}
}

// Status is a point-in-time snapshot of the loop.
type Status struct {
	Running             bool      `json:"running"`
	StartedAt           time.Time `json:"startedAt,omitempty"`
	BatchesRun          int       `json:"batchesRun"`
	ProcessedCount      int       `json:"processedCount"`
	TotalNewKeywords    int       `json:"totalNewKeywords"`
	ConsecutiveTimeouts int       `json:"consecutiveTimeouts"`
	TargetKeywords      int       `json:"targetKeywords,omitempty"`
	TargetReached       bool      `json:"targetReached"`
}

// Loop drives RunBatch on a ticker. One batch runs at a time; a tick that
// arrives while a batch is in flight is skipped.
type Loop struct {
	batcher  Batcher
	notifier Notifier
	listener Listener
	logger   *zap.SugaredLogger

	mu                  sync.Mutex
	cfg                 Config
	running             bool
	inFlight            bool
	cancel              context.CancelFunc
	startedAt           time.Time
	batchesRun          int
	processedCount      int
	totalNewKeywords    int
	consecutiveTimeouts int
	targetNotified      bool
}

func NewLoop(batcher Batcher, notifier Notifier, listener Listener, logger *zap.SugaredLogger) *Loop {
	if listener == nil {
		listener = NopListener{}
	}
	return &Loop{
		batcher:  batcher,
		notifier: notifier,
		listener: listener,
		logger:   logger,
	}
}

// Start begins the loop: one batch immediately, then one per interval.
// Starting an already-running loop is an error.
func (l *Loop) Start(cfg Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return model.NewInvalidParamError(fmt.Errorf("auto-collect already running"))
	}
	if cfg.Interval <= 0 {
		return model.NewInvalidParamError(fmt.Errorf("interval must be positive"))
	}
	if cfg.TimeoutThreshold <= 0 {
		cfg.TimeoutThreshold = 3
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cfg = cfg
	l.running = true
	l.cancel = cancel
	l.startedAt = time.Now()
	l.batchesRun = 0
	l.processedCount = 0
	l.totalNewKeywords = 0
	l.consecutiveTimeouts = 0
	l.targetNotified = false

	l.logger.Infow("auto-collect started",
		"interval", cfg.Interval, "limit", cfg.Limit, "target", cfg.TargetKeywords)

	go l.run(ctx)
	return nil
}

// Stop halts scheduling. An in-flight batch finishes on its own.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopLocked("stopped by request")
}

// Running reports whether the loop is scheduling batches.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Snapshot returns the loop's current counters.
func (l *Loop) Snapshot() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Status{
		Running:             l.running,
		StartedAt:           l.startedAt,
		BatchesRun:          l.batchesRun,
		ProcessedCount:      l.processedCount,
		TotalNewKeywords:    l.totalNewKeywords,
		ConsecutiveTimeouts: l.consecutiveTimeouts,
		TargetKeywords:      l.cfg.TargetKeywords,
		TargetReached:       l.targetNotified,
	}
}

func (l *Loop) run(ctx context.Context) {
	l.runBatch(ctx)

	ticker := time.NewTicker(l.interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.runBatch(ctx)
		}
	}
}

func (l *Loop) interval() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.Interval
}

func (l *Loop) runBatch(ctx context.Context) {
	l.mu.Lock()
	if !l.running || l.inFlight {
		l.mu.Unlock()
		return
	}
	cfg := l.cfg
	roundLimit := cfg.Limit
	if cfg.Limit > 0 {
		// Each round asks only for what is left of the session limit.
		roundLimit = cfg.Limit - l.processedCount
		if roundLimit <= 0 {
			l.stopLocked("seed limit reached")
			l.mu.Unlock()
			return
		}
	}
	l.inFlight = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.inFlight = false
		l.mu.Unlock()
	}()

	batchCtx := ctx
	cancel := context.CancelFunc(func() {})
	if cfg.BatchTimeout > 0 {
		batchCtx, cancel = context.WithTimeout(ctx, cfg.BatchTimeout)
	}
	defer cancel()

	res, err := l.batcher.RunBatch(batchCtx, model.CollectBatchInput{
		Limit:          roundLimit,
		Concurrent:     cfg.Concurrent,
		TargetKeywords: cfg.TargetKeywords,
	})

	if ctx.Err() != nil {
		return
	}

	if err != nil {
		l.handleBatchError(cfg, err)
		return
	}

	l.mu.Lock()
	l.batchesRun++
	l.consecutiveTimeouts = 0
	l.processedCount += res.Processed
	l.totalNewKeywords += res.TotalNewKeywords
	totalNew := l.totalNewKeywords
	notifyTarget := cfg.TargetKeywords > 0 && totalNew >= cfg.TargetKeywords && !l.targetNotified
	if notifyTarget {
		l.targetNotified = true
	}
	if cfg.Limit > 0 && l.processedCount >= cfg.Limit {
		l.stopLocked("seed limit reached")
	}
	l.mu.Unlock()

	l.listener.BatchFinished(res)

	if res.Processed == 0 {
		l.logger.Debugw("empty batch, backlog drained for now")
	}

	if notifyTarget {
		// The loop keeps running; reaching the target is informational.
		l.logger.Infow("keyword target reached", "target", cfg.TargetKeywords, "total", totalNew)
		l.listener.TargetReached(totalNew, cfg.TargetKeywords)
	}
}

func (l *Loop) handleBatchError(cfg Config, err error) {
	l.mu.Lock()
	l.batchesRun++

	if !errors.Is(err, context.DeadlineExceeded) {
		l.mu.Unlock()
		l.logger.Warnw("batch failed", "error", err)
		l.listener.BatchFailed(err)
		return
	}

	l.consecutiveTimeouts++
	timeouts := l.consecutiveTimeouts
	stop := timeouts >= cfg.TimeoutThreshold
	processed, totalNew := l.processedCount, l.totalNewKeywords
	if stop {
		l.stopLocked(fmt.Sprintf("%d consecutive batch timeouts", timeouts))
	}
	l.mu.Unlock()

	l.logger.Warnw("batch timed out", "consecutive", timeouts, "threshold", cfg.TimeoutThreshold)
	l.listener.BatchFailed(err)

	if stop && l.notifier != nil {
		reason := fmt.Sprintf("auto-collect stopped after %d consecutive batch timeouts", timeouts)
		if nerr := l.notifier.SendAutoCollectStopped(reason, processed, totalNew); nerr != nil {
			l.logger.Warnw("failed to send stop notification", "error", nerr)
		}
	}
}

// stopLocked stops scheduling. Caller holds l.mu.
func (l *Loop) stopLocked(reason string) {
	if !l.running {
		return
	}
	l.running = false
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.logger.Infow("auto-collect stopped", "reason", reason,
		"processed", l.processedCount, "new", l.totalNewKeywords)
	go l.listener.Stopped(reason)
}
