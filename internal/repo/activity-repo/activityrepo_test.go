package activityrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_RecordPurchase(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Purchase recorded",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO customer_activity (owner, account_id, purchased_at)`)).
					WithArgs("customer-1", 1, at).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO customer_activity (owner, account_id, purchased_at)`)).
					WithArgs("customer-1", 1, at).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.RecordPurchase(context.Background(), "customer-1", 1, at)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_RecordAccess(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Access recorded against latest purchase",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET access_count = access_count + 1`)).
					WithArgs("customer-1", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET access_count = access_count + 1`)).
					WithArgs("customer-1", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.RecordAccess(context.Background(), "customer-1", 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_RecordExtension(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET extension_hours = extension_hours + $3`)).
		WithArgs("customer-1", 1, -1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.RecordExtension(context.Background(), "customer-1", 1, -1)
	assert.NoError(t, err)
}

func TestRepository_RecordFeedback(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		rating    string
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "Positive feedback recorded",
			rating: "positive",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET rating = $2`)).
					WithArgs("customer-1", "positive").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:   "Database error",
			rating: "negative",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET rating = $2`)).
					WithArgs("customer-1", "negative").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.RecordFeedback(context.Background(), "customer-1", tt.rating)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
