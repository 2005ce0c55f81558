package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestMiddlewareEnforcesBudget(t *testing.T) {
	// 2 requests per hour: the window is long enough that no token
	// refills mid-test.
	store := NewLimiterStore(2, time.Hour)
	handler := Middleware(Options{Store: store})(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234").Code)

	w := doRequest(handler, "10.0.0.1:1234")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
}

func TestMiddlewareKeysAreIndependent(t *testing.T) {
	store := NewLimiterStore(1, time.Hour)
	handler := Middleware(Options{Store: store})(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:5678").Code,
		"same IP, different port shares a bucket")
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.2:1234").Code,
		"different IP gets its own bucket")
}

func TestMiddlewareRecordsStats(t *testing.T) {
	store := NewLimiterStore(1, time.Hour)
	stats := NewMemoryStats()
	handler := Middleware(Options{Store: store, Stats: stats})(okHandler())

	doRequest(handler, "10.0.0.1:1234")
	doRequest(handler, "10.0.0.1:1234")
	doRequest(handler, "10.0.0.1:1234")

	allowed, denied := stats.Counts()
	assert.Equal(t, int64(1), allowed)
	assert.Equal(t, int64(2), denied)
}

func TestClientIPKey(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"host and port", "192.168.1.5:8080", "192.168.1.5"},
		{"bare host", "192.168.1.5", "192.168.1.5"},
		{"empty", "", "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			assert.Equal(t, tc.want, ClientIPKey(req))
		})
	}
}

func TestLimiterStoreCleanup(t *testing.T) {
	store := NewLimiterStore(1, time.Second)
	store.idleTTL = 0 // every entry is immediately stale

	store.Get("a")
	store.Get("b")
	require.Len(t, store.entries, 2)

	time.Sleep(time.Millisecond)
	store.Cleanup()
	assert.Empty(t, store.entries)
}

func TestMemoryStatsRecord(t *testing.T) {
	stats := NewMemoryStats()
	require.NoError(t, stats.Record(context.Background(), Event{Allowed: true}))
	require.NoError(t, stats.Record(context.Background(), Event{Allowed: false}))

	allowed, denied := stats.Counts()
	assert.Equal(t, int64(1), allowed)
	assert.Equal(t, int64(1), denied)
}
