package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=expiry.go -destination=mock_expiry.go -package=workers

// Expirer reclaims every rental whose window has elapsed.
type Expirer interface {
	ExpireDue(ctx context.Context) error
}

// ExpiryWorker periodically triggers the expiry transition. A failed scan is
// logged and retried at the next tick.
type ExpiryWorker struct {
	expirer  Expirer
	interval time.Duration
}

func NewExpiryWorker(expirer Expirer, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpiryWorker{
		expirer:  expirer,
		interval: interval,
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	zap.L().Info("Expiry worker started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping expiry worker")
			return
		case <-ticker.C:
			if err := w.expirer.ExpireDue(ctx); err != nil {
				zap.L().Error("Expiry scan failed", zap.Error(err))
			}
		}
	}
}
