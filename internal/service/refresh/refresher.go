package refresh

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

// LoadFunc computes a fresh summary as of now.
type LoadFunc func(ctx context.Context, now time.Time) (*domain.DashboardSummary, error)

// PublishFunc receives the outcome of the latest run. It is called with the
// refresher's lock held and must not block or call back into the refresher.
type PublishFunc func(Result)

// Result is the outcome of one refresh run. On failure Summary still holds
// the last good snapshot (nil if there never was one) and Stale is set.
type Result struct {
	Sequence uint64
	Summary  *domain.DashboardSummary
	Err      error
	Stale    bool
}

// Refresher re-runs a dashboard load on a timer and on demand. Every run gets
// an increasing sequence number and only the newest run may publish.
type Refresher struct {
	load     LoadFunc
	publish  PublishFunc
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	seq      atomic.Uint64
	mu       sync.Mutex
	cancel   context.CancelFunc
	last     *domain.DashboardSummary
	trigger  chan struct{}
	inFlight sync.WaitGroup
}

func NewRefresher(load LoadFunc, publish PublishFunc, interval time.Duration, logger *logger.Logger) *Refresher {
	return &Refresher{
		load:     load,
		publish:  publish,
		interval: interval,
		now:      time.Now,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Refresh starts a new run and cancels the one in flight, if any.
// It returns the sequence number of the new run without waiting for it.
func (r *Refresher) Refresh(ctx context.Context) uint64 {
	runCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.cancel = cancel
	seq := r.seq.Add(1)
	r.mu.Unlock()

	r.inFlight.Add(1)
	go func() {
		defer r.inFlight.Done()
		defer cancel()

		summary, err := r.load(runCtx, r.now())
		r.complete(runCtx, seq, summary, err)
	}()

	return seq
}

func (r *Refresher) complete(ctx context.Context, seq uint64, summary *domain.DashboardSummary, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq.Load() {
		r.logger.Debug("Discarding superseded dashboard refresh", zap.Uint64("sequence", seq))
		return
	}
	if err != nil && errors.Is(ctx.Err(), context.Canceled) {
		return
	}

	if err != nil {
		r.logger.Error("Dashboard refresh failed", err, zap.Uint64("sequence", seq))
		r.publish(Result{Sequence: seq, Summary: r.last, Err: err, Stale: true})
		return
	}

	r.last = summary
	r.publish(Result{Sequence: seq, Summary: summary})
}

// Trigger asks a running Run loop for an immediate refresh. Requests that
// arrive while one is already pending are merged.
func (r *Refresher) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Run refreshes once, then on every tick and trigger until ctx is done.
// In-flight work is cancelled and awaited before Run returns.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			r.stop()
			return
		case <-ticker.C:
			r.Refresh(ctx)
		case <-r.trigger:
			r.Refresh(ctx)
		}
	}
}

// Last returns the most recent successful summary.
func (r *Refresher) Last() *domain.DashboardSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Wait blocks until no run is in flight.
func (r *Refresher) Wait() {
	r.inFlight.Wait()
}

func (r *Refresher) stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.mu.Unlock()
	r.Wait()
}
