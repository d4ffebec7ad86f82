package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ESChernov/steamrent/pkg/clients"
)

const (
	queryTimeURL   = "https://api.steampowered.com/ITwoFactorService/QueryTime/v1/"
	resyncInterval = time.Hour
)

type queryTimeResponse struct {
	Response struct {
		ServerTime string `json:"server_time"`
	} `json:"response"`
}

// TimeSync keeps a cached offset between Steam's clock and the local one.
// Sync failures degrade to the last known offset (zero before the first
// successful sync) so code generation never blocks on the time authority.
type TimeSync struct {
	client clients.HTTPClientI
	url    string
	now    func() time.Time

	mu       sync.Mutex
	offset   time.Duration
	syncedAt time.Time
	syncing  bool
}

func NewTimeSync(client clients.HTTPClientI) *TimeSync {
	return &TimeSync{
		client: client,
		url:    queryTimeURL,
		now:    time.Now,
	}
}

// Offset returns the cached offset, resyncing when it is older than the
// resync interval. The lock is never held across the HTTP call: concurrent
// callers read the cached value while one goroutine performs the sync.
func (s *TimeSync) Offset(ctx context.Context) time.Duration {
	s.mu.Lock()
	cached := s.offset
	fresh := !s.syncedAt.IsZero() && s.now().Sub(s.syncedAt) < resyncInterval
	if fresh || s.syncing {
		s.mu.Unlock()
		return cached
	}
	s.syncing = true
	s.mu.Unlock()

	serverTime, err := s.queryServerTime()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncing = false
	if err != nil {
		zap.L().Warn("time sync failed, using cached offset", zap.Error(err))
		return s.offset
	}

	s.offset = serverTime.Sub(s.now())
	s.syncedAt = s.now()
	return s.offset
}

func (s *TimeSync) queryServerTime() (time.Time, error) {
	statusCode, body, _, err := s.client.Post(s.url, nil, []byte("steamid=0"))
	if err != nil {
		return time.Time{}, err
	}
	if statusCode != http.StatusOK {
		return time.Time{}, errUnexpectedStatus(statusCode)
	}

	var resp queryTimeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return time.Time{}, err
	}
	seconds, err := strconv.ParseInt(resp.Response.ServerTime, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(seconds, 0), nil
}

type errUnexpectedStatus int

func (e errUnexpectedStatus) Error() string {
	return "unexpected status code " + strconv.Itoa(int(e))
}
