package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ESChernov/steamrent/internal/domain"
	"github.com/ESChernov/steamrent/internal/guard"
)

var testBase = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// syncPool runs tasks inline so dispatch tests are deterministic.
type syncPool struct{}

func (syncPool) AddTask(_ context.Context, task Task) error { return task() }
func (syncPool) Close()                                     {}

func newDispatchMock(t *testing.T) (*DispatchWorker, *MockAccountSource, *MockCodeSource, *MockNotifier) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountSource(ctrl)
	codes := NewMockCodeSource(ctrl)
	notifier := NewMockNotifier(ctrl)

	worker := NewDispatchWorker(accounts, codes, notifier, 5*time.Minute, 24*time.Hour)
	worker.pool = syncPool{}
	worker.now = func() time.Time { return testBase }
	return worker, accounts, codes, notifier
}

func rented(id int, owner string, start time.Time, durationHours int) domain.AccountRecord {
	return domain.AccountRecord{
		ID:               id,
		AccountName:      "Game X",
		Login:            "login",
		Password:         "password",
		SecretBundlePath: "/bundles/acc.maFile",
		RentalDuration:   durationHours,
		Owner:            &owner,
		RentalStart:      &start,
		MaxAccessCount:   3,
	}
}

func TestDispatchSendsCodes(t *testing.T) {
	worker, accounts, codes, notifier := newDispatchMock(t)
	start := testBase.Add(-time.Hour)

	accounts.EXPECT().ListOwned(gomock.Any()).
		Return([]domain.AccountRecord{rented(1, "alice", start, 24), rented(2, "bob", start, 24)}, nil)
	codes.EXPECT().CodeFor(gomock.Any(), "/bundles/acc.maFile").Return("CX2MR", nil).Times(2)
	notifier.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(nil)
	notifier.EXPECT().Send(gomock.Any(), "bob", gomock.Any()).Return(nil)

	worker.dispatch(context.Background())

	assert.Len(t, worker.tasks, 2)
	assert.Equal(t, 1, worker.tasks[taskKey{AccountID: 1, Owner: "alice"}].sent)
}

func TestDispatchSkipsRecentlySent(t *testing.T) {
	worker, accounts, codes, notifier := newDispatchMock(t)
	start := testBase.Add(-time.Hour)

	accounts.EXPECT().ListOwned(gomock.Any()).
		Return([]domain.AccountRecord{rented(1, "alice", start, 24)}, nil).Times(2)
	codes.EXPECT().CodeFor(gomock.Any(), gomock.Any()).Return("CX2MR", nil)
	notifier.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(nil)

	worker.dispatch(context.Background())
	// second scan inside the interval sends nothing
	worker.dispatch(context.Background())

	assert.Equal(t, 1, worker.tasks[taskKey{AccountID: 1, Owner: "alice"}].sent)
}

func TestDispatchResendsAtNextTick(t *testing.T) {
	worker, accounts, codes, notifier := newDispatchMock(t)
	start := testBase.Add(-time.Hour)

	// the clock keeps moving between the scan and the send; lastSent must
	// carry the scan time, or every other tick would fall just short of
	// the interval and get skipped
	current := testBase
	worker.now = func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}

	accounts.EXPECT().ListOwned(gomock.Any()).
		Return([]domain.AccountRecord{rented(1, "alice", start, 24)}, nil).Times(2)
	codes.EXPECT().CodeFor(gomock.Any(), gomock.Any()).Return("CX2MR", nil).Times(2)
	notifier.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(nil).Times(2)

	worker.dispatch(context.Background())
	current = testBase.Add(worker.interval)
	worker.dispatch(context.Background())

	assert.Equal(t, 2, worker.tasks[taskKey{AccountID: 1, Owner: "alice"}].sent)
}

func TestDispatchSkipsExpiredAndSentinel(t *testing.T) {
	worker, accounts, _, _ := newDispatchMock(t)

	expired := rented(1, "alice", testBase.Add(-25*time.Hour), 24)
	sentinel := rented(2, domain.OtherAccountOwner, testBase.Add(-time.Hour), 24)

	accounts.EXPECT().ListOwned(gomock.Any()).
		Return([]domain.AccountRecord{expired, sentinel}, nil)

	worker.dispatch(context.Background())

	assert.Empty(t, worker.tasks)
}

func TestDispatchSurvivesBadBundle(t *testing.T) {
	worker, accounts, codes, notifier := newDispatchMock(t)
	start := testBase.Add(-time.Hour)

	corrupt := rented(1, "alice", start, 24)
	corrupt.SecretBundlePath = "/bundles/corrupt.maFile"

	accounts.EXPECT().ListOwned(gomock.Any()).
		Return([]domain.AccountRecord{corrupt, rented(2, "bob", start, 24)}, nil)
	codes.EXPECT().CodeFor(gomock.Any(), "/bundles/corrupt.maFile").Return("", guard.ErrBadBundle)
	codes.EXPECT().CodeFor(gomock.Any(), "/bundles/acc.maFile").Return("57G3M", nil)
	notifier.EXPECT().Send(gomock.Any(), "bob", gomock.Any()).Return(nil)

	worker.dispatch(context.Background())

	assert.Equal(t, 1, worker.tasks[taskKey{AccountID: 1, Owner: "alice"}].failed)
	assert.Equal(t, 1, worker.tasks[taskKey{AccountID: 2, Owner: "bob"}].sent)
}

func TestDispatchRetriesAfterNotifierFailure(t *testing.T) {
	worker, accounts, codes, notifier := newDispatchMock(t)
	start := testBase.Add(-time.Hour)

	accounts.EXPECT().ListOwned(gomock.Any()).
		Return([]domain.AccountRecord{rented(1, "alice", start, 24)}, nil).Times(2)
	codes.EXPECT().CodeFor(gomock.Any(), gomock.Any()).Return("CX2MR", nil).Times(2)
	notifier.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(assert.AnError)
	notifier.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(nil)

	worker.dispatch(context.Background())
	// a failed send does not suppress the retry on the next scan
	worker.dispatch(context.Background())

	task := worker.tasks[taskKey{AccountID: 1, Owner: "alice"}]
	assert.Equal(t, 1, task.failed)
	assert.Equal(t, 1, task.sent)
}

func TestEvictStale(t *testing.T) {
	worker, _, _, _ := newDispatchMock(t)

	fresh := taskKey{AccountID: 1, Owner: "alice"}
	stale := taskKey{AccountID: 2, Owner: "bob"}
	worker.tasks[fresh] = &rentalTask{touched: testBase.Add(-time.Hour)}
	worker.tasks[stale] = &rentalTask{touched: testBase.Add(-25 * time.Hour)}

	worker.evictStale()

	assert.Contains(t, worker.tasks, fresh)
	assert.NotContains(t, worker.tasks, stale)
}

func TestExpiryWorkerStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	expirer := NewMockExpirer(ctrl)
	expirer.EXPECT().ExpireDue(gomock.Any()).Return(nil).AnyTimes()

	worker := NewExpiryWorker(expirer, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expiry worker did not stop on context cancel")
	}
}
