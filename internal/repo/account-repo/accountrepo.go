package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ESChernov/steamrent/internal/domain"
	"github.com/ESChernov/steamrent/internal/pg"
)

// ErrNotUpdated is returned by IncrementAccess when the conditional update
// matched no row: the account is missing, owned by someone else, or the
// access cap is already reached.
var ErrNotUpdated = errors.New("account not found, not owned or access cap reached")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Claim atomically assigns an unowned account to owner and stamps unowned
// rows sharing the same login with the sibling sentinel. Returns false when
// the row was already owned (the claim race was lost).
func (r *Repository) Claim(ctx context.Context, accountID int, owner string, startedAt time.Time) (bool, error) {
	claimQuery := `
        UPDATE accounts
        SET owner = $2, rental_start = $3, access_count = 0, last_access = NULL
        WHERE id = $1 AND owner IS NULL
    `
	siblingsQuery := `
        UPDATE accounts
        SET owner = $2
        WHERE id <> $1 AND owner IS NULL
          AND login = (SELECT login FROM accounts WHERE id = $1)
    `
	var claimed bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, claimQuery, accountID, owner, startedAt)
		if err != nil {
			zap.L().Error("can't claim account", zap.Error(err))
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		claimed = true

		if _, err := r.db.Exec(ctx, siblingsQuery, accountID, domain.OtherAccountOwner); err != nil {
			zap.L().Error("can't stamp sibling accounts", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return claimed, nil
}

// Release clears the rental fields of the account and frees its sibling
// sentinels. Idempotent: releasing a free account is a no-op.
func (r *Repository) Release(ctx context.Context, accountID int) error {
	siblingsQuery := `
        UPDATE accounts
        SET owner = NULL
        WHERE owner = $2
          AND login = (SELECT login FROM accounts WHERE id = $1)
    `
	releaseQuery := `
        UPDATE accounts
        SET owner = NULL, rental_start = NULL
        WHERE id = $1
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, siblingsQuery, accountID, domain.OtherAccountOwner); err != nil {
			zap.L().Error("can't free sibling accounts", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, releaseQuery, accountID); err != nil {
			zap.L().Error("can't release account", zap.Error(err))
			return err
		}
		return nil
	})
}

// ExtendDuration adds deltaHours (possibly negative) to the rental duration
// of an actively rented account. The duration never goes below zero. Returns
// false when the account has no real owner.
func (r *Repository) ExtendDuration(ctx context.Context, accountID int, deltaHours int) (bool, error) {
	query := `
        UPDATE accounts
        SET rental_duration = GREATEST(rental_duration + $2, 0)
        WHERE id = $1 AND owner IS NOT NULL AND owner <> $3
    `
	tag, err := r.db.Exec(ctx, query, accountID, deltaHours, domain.OtherAccountOwner)
	if err != nil {
		zap.L().Error("can't extend rental duration", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementAccess bumps the access counter in a single conditional update so
// concurrent requests cannot exceed the cap.
func (r *Repository) IncrementAccess(ctx context.Context, accountID int, owner string, at time.Time) (int, int, error) {
	query := `
        UPDATE accounts
        SET access_count = access_count + 1, last_access = $3
        WHERE id = $1 AND owner = $2 AND access_count < max_access_count
        RETURNING access_count, max_access_count
    `
	var accessCount, maxAccessCount int
	err := r.db.QueryRow(ctx, query, accountID, owner, at).Scan(&accessCount, &maxAccessCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, ErrNotUpdated
	}
	if err != nil {
		zap.L().Error("can't increment access count", zap.Error(err))
		return 0, 0, err
	}
	return accessCount, maxAccessCount, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, accountID int, password string) error {
	query := `
        UPDATE accounts
        SET password = $2
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, accountID, password); err != nil {
		zap.L().Error("can't update account password", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, accountID int) (*domain.AccountRecord, error) {
	query := `
        SELECT *
        FROM accounts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, accountID)

	var account domain.AccountRecord
	err := scanAccount(row, &account)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// GetByName returns the lowest-id record carrying the name. Names map to a
// pool of interchangeable copies, so this is the canonical representative.
func (r *Repository) GetByName(ctx context.Context, accountName string) (*domain.AccountRecord, error) {
	query := `
        SELECT *
        FROM accounts
        WHERE account_name = $1
        ORDER BY id ASC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, accountName)

	var account domain.AccountRecord
	err := scanAccount(row, &account)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find account by name", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// FindActiveByOwner returns the owner's most recently started rental.
func (r *Repository) FindActiveByOwner(ctx context.Context, owner string) (*domain.AccountRecord, error) {
	query := `
        SELECT *
        FROM accounts
        WHERE owner = $1
        ORDER BY rental_start DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, owner)

	var account domain.AccountRecord
	err := scanAccount(row, &account)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find active rental", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) ListNames(ctx context.Context) ([]string, error) {
	query := `
        SELECT DISTINCT account_name
        FROM accounts
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list account names", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			zap.L().Error("can't scan account name", zap.Error(err))
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (r *Repository) ListUnownedByName(ctx context.Context, accountName string) ([]domain.AccountRecord, error) {
	query := `
        SELECT *
        FROM accounts
        WHERE owner IS NULL AND account_name = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, accountName)
	if err != nil {
		zap.L().Error("can't list unowned accounts by name", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

// ListUnowned returns every claimable record, regardless of name.
func (r *Repository) ListUnowned(ctx context.Context) ([]domain.AccountRecord, error) {
	query := `
        SELECT *
        FROM accounts
        WHERE owner IS NULL
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list unowned accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.AccountRecord, error) {
	query := `
        SELECT *
        FROM accounts
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

// ListOwned returns every genuinely rented account, skipping sibling
// sentinels.
func (r *Repository) ListOwned(ctx context.Context) ([]domain.AccountRecord, error) {
	query := `
        SELECT *
        FROM accounts
        WHERE owner IS NOT NULL AND owner <> $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, domain.OtherAccountOwner)
	if err != nil {
		zap.L().Error("can't list owned accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func scanAccount(row pgx.Row, account *domain.AccountRecord) error {
	return row.Scan(
		&account.ID,
		&account.AccountName,
		&account.Login,
		&account.Password,
		&account.SecretBundlePath,
		&account.RentalDuration,
		&account.Owner,
		&account.RentalStart,
		&account.AccessCount,
		&account.MaxAccessCount,
		&account.LastAccess,
	)
}

func scanAccounts(rows pgx.Rows) ([]domain.AccountRecord, error) {
	var accounts []domain.AccountRecord
	for rows.Next() {
		var account domain.AccountRecord
		if err := scanAccount(rows, &account); err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
