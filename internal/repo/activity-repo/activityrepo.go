package activityrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ESChernov/steamrent/internal/pg"
)

// Repository keeps the per-renter analytics log. It is off the critical
// path: callers log failures and move on.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) RecordPurchase(ctx context.Context, owner string, accountID int, at time.Time) error {
	query := `
        INSERT INTO customer_activity (owner, account_id, purchased_at)
        VALUES ($1, $2, $3)
    `
	if _, err := r.db.Exec(ctx, query, owner, accountID, at); err != nil {
		zap.L().Error("can't record purchase", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RecordAccess(ctx context.Context, owner string, accountID int) error {
	query := `
        UPDATE customer_activity
        SET access_count = access_count + 1
        WHERE id = (
            SELECT id FROM customer_activity
            WHERE owner = $1 AND account_id = $2
            ORDER BY purchased_at DESC
            LIMIT 1
        )
    `
	if _, err := r.db.Exec(ctx, query, owner, accountID); err != nil {
		zap.L().Error("can't record access", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RecordExtension(ctx context.Context, owner string, accountID int, hours int) error {
	query := `
        UPDATE customer_activity
        SET extension_hours = extension_hours + $3
        WHERE id = (
            SELECT id FROM customer_activity
            WHERE owner = $1 AND account_id = $2
            ORDER BY purchased_at DESC
            LIMIT 1
        )
    `
	if _, err := r.db.Exec(ctx, query, owner, accountID, hours); err != nil {
		zap.L().Error("can't record extension", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) RecordFeedback(ctx context.Context, owner string, rating string) error {
	query := `
        UPDATE customer_activity
        SET rating = $2
        WHERE id = (
            SELECT id FROM customer_activity
            WHERE owner = $1
            ORDER BY purchased_at DESC
            LIMIT 1
        )
    `
	if _, err := r.db.Exec(ctx, query, owner, rating); err != nil {
		zap.L().Error("can't record feedback", zap.Error(err))
		return err
	}
	return nil
}
