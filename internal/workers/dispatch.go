package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ESChernov/steamrent/internal/domain"
)

//go:generate mockgen -source=dispatch.go -destination=mock_dispatch.go -package=workers

type AccountSource interface {
	ListOwned(ctx context.Context) ([]domain.AccountRecord, error)
}

type CodeSource interface {
	CodeFor(ctx context.Context, bundlePath string) (string, error)
}

type Notifier interface {
	Send(ctx context.Context, recipient string, message string) error
}

type taskKey struct {
	AccountID int
	Owner     string
}

// rentalTask is the process-local bookkeeping for one active rental. Losing
// it on restart only causes one redundant code to be sent; the store stays
// the single source of truth.
type rentalTask struct {
	lastSent time.Time
	touched  time.Time
	sent     int
	failed   int
}

// DispatchWorker pushes a fresh Guard code to every active renter once per
// interval. One record's failure (corrupt bundle, unreachable notifier) is
// logged and never stops the scan.
type DispatchWorker struct {
	accounts AccountSource
	codes    CodeSource
	notifier Notifier
	interval time.Duration
	taskTTL  time.Duration
	pool     WorkerPoolI
	now      func() time.Time

	mu    sync.Mutex
	tasks map[taskKey]*rentalTask
}

func NewDispatchWorker(accounts AccountSource, codes CodeSource, notifier Notifier, interval, taskTTL time.Duration) *DispatchWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if taskTTL <= 0 {
		taskTTL = 24 * time.Hour
	}
	return &DispatchWorker{
		accounts: accounts,
		codes:    codes,
		notifier: notifier,
		interval: interval,
		taskTTL:  taskTTL,
		pool:     NewWorkerPool(10),
		now:      time.Now,
		tasks:    make(map[taskKey]*rentalTask),
	}
}

func (w *DispatchWorker) Start(ctx context.Context) {
	zap.L().Info("Code dispatch worker started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping code dispatch worker")
			w.pool.Close()
			return
		case <-ticker.C:
			w.dispatch(ctx)
			w.evictStale()
		}
	}
}

func (w *DispatchWorker) dispatch(ctx context.Context) {
	accounts, err := w.accounts.ListOwned(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch active rentals for code dispatch", zap.Error(err))
		return
	}

	now := w.now()
	var g errgroup.Group
	for _, account := range accounts {
		account := account

		if !account.Rented() || account.Expired(now) {
			continue
		}
		key := taskKey{AccountID: account.ID, Owner: *account.Owner}
		if !w.due(key, now) {
			continue
		}

		g.Go(func() error {
			return w.pool.AddTask(ctx, func() error {
				w.dispatchOne(ctx, &account, key, now)
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching codes", zap.Error(err))
	}
}

func (w *DispatchWorker) dispatchOne(ctx context.Context, account *domain.AccountRecord, key taskKey, at time.Time) {
	code, err := w.codes.CodeFor(ctx, account.SecretBundlePath)
	if err != nil {
		zap.L().Error("Skipping rental, can't generate code",
			zap.Int("accountID", account.ID), zap.Error(err))
		w.markFailed(key, at)
		return
	}

	message := fmt.Sprintf("Fresh Steam Guard code for %q: %s", account.AccountName, code)
	if err := w.notifier.Send(ctx, key.Owner, message); err != nil {
		zap.L().Warn("Can't deliver code, will retry next tick",
			zap.Int("accountID", account.ID), zap.Error(err))
		w.markFailed(key, at)
		return
	}

	w.markSent(key, at)
}

// due reports whether a code should go out for the rental: true unless one
// was already sent within the interval.
func (w *DispatchWorker) due(key taskKey, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	task, ok := w.tasks[key]
	if !ok {
		return true
	}
	return now.Sub(task.lastSent) >= w.interval
}

// markSent stamps lastSent with the scan time, not the send time. A stamp
// taken after the send would sit a little past the tick and make the next
// tick's now-lastSent comparison fall just short of the interval.
func (w *DispatchWorker) markSent(key taskKey, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	task := w.taskLocked(key)
	task.sent++
	task.lastSent = at
	task.touched = at
}

func (w *DispatchWorker) markFailed(key taskKey, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	task := w.taskLocked(key)
	task.failed++
	task.touched = at
}

func (w *DispatchWorker) taskLocked(key taskKey) *rentalTask {
	task, ok := w.tasks[key]
	if !ok {
		task = &rentalTask{}
		w.tasks[key] = task
	}
	return task
}

// evictStale drops bookkeeping for rentals that saw no activity within the
// TTL, keeping the map bounded.
func (w *DispatchWorker) evictStale() {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := w.now().Add(-w.taskTTL)
	for key, task := range w.tasks {
		if task.touched.Before(cutoff) {
			delete(w.tasks, key)
		}
	}
}
