package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/apperrors"
)

// RecalcFunc performs one balance recalculation for an account.
type RecalcFunc func(ctx context.Context, accountID string) error

// RecalcQueue is a bounded in-process work queue that serializes balance
// recalculation requests behind a fixed worker pool. Requests are
// at-least-once: a request that fails with a transient error is retried,
// anything else is logged and dropped (the next write to the account will
// enqueue a fresh recalculation anyway).
type RecalcQueue struct {
	recalc   RecalcFunc
	logger   *slog.Logger
	requests chan string
	workers  int
	retries  int
	backoff  time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	done     chan struct{}
}

// Option configures a RecalcQueue.
type Option func(*RecalcQueue)

// WithRetries sets the retry count for transient failures.
func WithRetries(n int) Option {
	return func(q *RecalcQueue) { q.retries = n }
}

// WithBackoff sets the delay between retries.
func WithBackoff(d time.Duration) Option {
	return func(q *RecalcQueue) { q.backoff = d }
}

// NewRecalcQueue creates a queue with the given worker count and buffer size.
func NewRecalcQueue(recalc RecalcFunc, logger *slog.Logger, workers, bufferSize int, opts ...Option) *RecalcQueue {
	if workers < 1 {
		workers = 1
	}
	if bufferSize < 1 {
		bufferSize = 64
	}
	q := &RecalcQueue{
		recalc:   recalc,
		logger:   logger,
		requests: make(chan string, bufferSize),
		workers:  workers,
		retries:  3,
		backoff:  100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Start launches the worker pool.
func (q *RecalcQueue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx)
	}
}

func (q *RecalcQueue) worker(ctx context.Context) {
	defer q.wg.Done()
	for {
		select {
		case accountID := <-q.requests:
			q.process(ctx, accountID)
		case <-q.done:
			// Drain whatever is still buffered before exiting.
			for {
				select {
				case accountID := <-q.requests:
					q.process(ctx, accountID)
				default:
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func (q *RecalcQueue) process(ctx context.Context, accountID string) {
	var err error
	for attempt := 0; attempt <= q.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(q.backoff):
			case <-ctx.Done():
				return
			}
		}
		err = q.recalc(ctx, accountID)
		if err == nil {
			return
		}
		if !errors.Is(err, apperrors.ErrTransient) {
			break
		}
		q.logger.Warn("balance recalculation failed, retrying",
			slog.String("accountID", accountID),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
	}
	q.logger.Error("balance recalculation abandoned",
		slog.String("accountID", accountID),
		slog.String("error", err.Error()))
}

// Enqueue schedules a recalculation. When the buffer is full or the queue
// is stopped, the recalculation runs inline on the caller's goroutine
// instead; a request is never dropped.
func (q *RecalcQueue) Enqueue(accountID string) {
	select {
	case <-q.done:
	default:
		select {
		case q.requests <- accountID:
			return
		default:
		}
	}
	q.logger.Warn("recalc queue saturated, running inline", slog.String("accountID", accountID))
	q.process(context.Background(), accountID)
}

// RunSync performs the recalculation inline, bypassing the queue.
func (q *RecalcQueue) RunSync(ctx context.Context, accountID string) error {
	return q.recalc(ctx, accountID)
}

// Stop signals the workers to drain buffered work and exit, then waits for
// them. Safe to call more than once.
func (q *RecalcQueue) Stop() {
	q.stopOnce.Do(func() {
		close(q.done)
	})
	q.wg.Wait()
}
