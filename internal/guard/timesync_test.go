package guard

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ESChernov/steamrent/pkg/clients"
)

func newTimeSyncMock(t *testing.T) (*TimeSync, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	sync := NewTimeSync(client)
	return sync, client
}

func TestTimeSyncOffset(t *testing.T) {
	sync, client := newTimeSyncMock(t)

	local := time.Unix(1000, 0)
	sync.now = func() time.Time { return local }

	client.EXPECT().
		Post(queryTimeURL, nil, gomock.Any()).
		Return(http.StatusOK, []byte(`{"response":{"server_time":"1300"}}`), nil, nil)

	offset := sync.Offset(context.Background())
	assert.Equal(t, 300*time.Second, offset)

	// second call inside the resync interval uses the cache
	offset = sync.Offset(context.Background())
	assert.Equal(t, 300*time.Second, offset)
}

func TestTimeSyncFailureDegradesToZero(t *testing.T) {
	sync, client := newTimeSyncMock(t)

	client.EXPECT().
		Post(queryTimeURL, nil, gomock.Any()).
		Return(0, nil, nil, errors.New("network unreachable"))

	offset := sync.Offset(context.Background())
	assert.Equal(t, time.Duration(0), offset)
}

func TestTimeSyncConcurrentCallersUseCache(t *testing.T) {
	sync, client := newTimeSyncMock(t)

	local := time.Unix(1000, 0)
	sync.now = func() time.Time { return local }

	inFlight := make(chan struct{})
	release := make(chan struct{})
	client.EXPECT().
		Post(queryTimeURL, nil, gomock.Any()).
		DoAndReturn(func(string, http.Header, []byte) (int, []byte, http.Header, error) {
			close(inFlight)
			<-release
			return http.StatusOK, []byte(`{"response":{"server_time":"1300"}}`), nil, nil
		})

	synced := make(chan time.Duration, 1)
	go func() {
		synced <- sync.Offset(context.Background())
	}()

	// while one goroutine is syncing, others get the cached offset
	// immediately instead of queueing behind the HTTP call
	<-inFlight
	assert.Equal(t, time.Duration(0), sync.Offset(context.Background()))

	close(release)
	assert.Equal(t, 300*time.Second, <-synced)
	assert.Equal(t, 300*time.Second, sync.Offset(context.Background()))
}

func TestTimeSyncBadResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unexpected status", status: http.StatusBadGateway, body: ""},
		{name: "malformed json", status: http.StatusOK, body: "{"},
		{name: "non-numeric server time", status: http.StatusOK, body: `{"response":{"server_time":"soon"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync, client := newTimeSyncMock(t)
			client.EXPECT().
				Post(queryTimeURL, nil, gomock.Any()).
				Return(tt.status, []byte(tt.body), nil, nil)

			assert.Equal(t, time.Duration(0), sync.Offset(context.Background()))
		})
	}
}
