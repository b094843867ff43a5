// Package queue is a timer-driven batch scheduler for throttled calls. It
// runs at most one batch at a time on a fixed tick, retries calls whose
// status code marks them retryable, and so serializes in-flight mutations
// per resource for callers sharing one queue.
package queue

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/omniform/docptr/debug"
)

// Call performs one throttled request and reports its status code. A
// non-nil error is final; retry decisions look only at the status.
type Call func(ctx context.Context) (int, error)

// Result is the terminal outcome of an enqueued call.
type Result struct {
	Status   int
	Err      error
	Attempts int
}

type Config struct {
	// Interval between batches.
	Interval time.Duration
	// BatchSize is the maximum number of calls dispatched per tick.
	BatchSize int
	// MaxAttempts bounds retries per call, first attempt included.
	MaxAttempts int
	// RetryStatus lists the status codes that re-enqueue a call.
	RetryStatus []int
}

type Option func(*Config)

func WithInterval(d time.Duration) Option {
	return func(c *Config) { c.Interval = d }
}

func WithBatchSize(n int) Option {
	return func(c *Config) { c.BatchSize = n }
}

func WithMaxAttempts(n int) Option {
	return func(c *Config) { c.MaxAttempts = n }
}

func WithRetryStatus(codes ...int) Option {
	return func(c *Config) { c.RetryStatus = codes }
}

type item struct {
	call     Call
	attempts int
	ch       chan Result
}

// Queue dispatches enqueued calls in timed batches.
type Queue struct {
	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	pending []*item
	closed  bool
}

// New starts a queue. Defaults: 500ms interval, batches of 5, 3 attempts,
// retry on 429 and 503.
func New(opts ...Option) *Queue {
	cfg := Config{
		Interval:    500 * time.Millisecond,
		BatchSize:   5,
		MaxAttempts: 3,
		RetryStatus: []int{http.StatusTooManyRequests, http.StatusServiceUnavailable},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{cfg: cfg, ctx: ctx, cancel: cancel}
	q.wg.Add(1)
	go q.run()
	return q
}

// Enqueue schedules a call and returns the channel its terminal Result
// arrives on. The channel is closed after delivery. Enqueue on a stopped
// queue delivers the cancellation Result immediately.
func (q *Queue) Enqueue(call Call) <-chan Result {
	it := &item{call: call, ch: make(chan Result, 1)}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		it.ch <- Result{Err: q.ctx.Err()}
		close(it.ch)
		return it.ch
	}
	q.pending = append(q.pending, it)
	q.mu.Unlock()
	return it.ch
}

// Stop cancels the dispatch loop. Undelivered calls receive a Result
// carrying the cancellation error.
func (q *Queue) Stop() {
	q.cancel()
	q.wg.Wait()
	q.mu.Lock()
	rest := q.pending
	q.pending = nil
	q.closed = true
	q.mu.Unlock()
	for _, it := range rest {
		it.ch <- Result{Err: q.ctx.Err(), Attempts: it.attempts}
		close(it.ch)
	}
}

func (q *Queue) run() {
	defer q.wg.Done()
	ticker := time.NewTicker(q.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-q.ctx.Done():
			return
		case <-ticker.C:
			q.dispatch()
		}
	}
}

// dispatch runs one batch to completion; ticks never overlap batches.
func (q *Queue) dispatch() {
	q.mu.Lock()
	n := min(q.cfg.BatchSize, len(q.pending))
	batch := q.pending[:n]
	q.pending = q.pending[n:]
	q.mu.Unlock()

	for _, it := range batch {
		it.attempts++
		status, err := it.call(q.ctx)
		if debug.Queue() {
			debug.Logf("queue call attempt %d: status %d err %v\n", it.attempts, status, err)
		}
		if err == nil && q.retryable(status) && it.attempts < q.cfg.MaxAttempts {
			q.mu.Lock()
			q.pending = append(q.pending, it)
			q.mu.Unlock()
			continue
		}
		it.ch <- Result{Status: status, Err: err, Attempts: it.attempts}
		close(it.ch)
	}
}

func (q *Queue) retryable(status int) bool {
	for _, code := range q.cfg.RetryStatus {
		if status == code {
			return true
		}
	}
	return false
}
