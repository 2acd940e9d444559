package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsawebmaster/delivery/internal/storefront"
)

type idempotencyFixture struct {
	router *gin.Engine
	store  *storefront.SessionStore
	calls  atomic.Int32
	status int
}

func newIdempotencyFixture(t *testing.T, status int) *idempotencyFixture {
	t.Helper()
	cfg := DefaultIdempotencyConfig()
	t.Cleanup(cfg.Cache.Stop)

	f := &idempotencyFixture{store: storefront.NewSessionStore(time.Hour), status: status}
	f.router = gin.New()
	f.router.Use(Session(f.store, SessionConfig{}), Idempotency(cfg))
	handler := func(c *gin.Context) {
		n := f.calls.Add(1)
		c.JSON(f.status, gin.H{"call": n})
	}
	f.router.POST("/api/order", handler)
	f.router.GET("/api/state", handler)
	return f
}

func (f *idempotencyFixture) send(method, key, sid, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/"+map[string]string{http.MethodPost: "order", http.MethodGet: "state"}[method], strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sid})
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSuccess(t *testing.T) {
	f := newIdempotencyFixture(t, http.StatusOK)
	sid := f.store.Create().ID

	first := f.send(http.MethodPost, "k1", sid, `{"name":"Ana"}`)
	second := f.send(http.MethodPost, "k1", sid, `{"name":"Ana"}`)

	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestIdempotency_KeyScope(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		key2      string
		body2     string
		otherSess bool
	}{
		{name: "different key", method: http.MethodPost, key2: "k2", body2: "a"},
		{name: "different body", method: http.MethodPost, key2: "k1", body2: "b"},
		{name: "different session", method: http.MethodPost, key2: "k1", body2: "a", otherSess: true},
		{name: "no key", method: http.MethodPost, key2: "", body2: "a"},
		{name: "get is never cached", method: http.MethodGet, key2: "k1", body2: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIdempotencyFixture(t, http.StatusOK)
			sid := f.store.Create().ID
			sid2 := sid
			if tt.otherSess {
				sid2 = f.store.Create().ID
			}

			f.send(tt.method, "k1", sid, "a")
			w := f.send(tt.method, tt.key2, sid2, tt.body2)

			assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
			assert.Equal(t, int32(2), f.calls.Load())
		})
	}
}

func TestIdempotency_FailuresAreNotCached(t *testing.T) {
	f := newIdempotencyFixture(t, http.StatusUnprocessableEntity)
	sid := f.store.Create().ID

	f.send(http.MethodPost, "k1", sid, "a")
	w := f.send(http.MethodPost, "k1", sid, "a")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestIdempotencyCache_InFlight(t *testing.T) {
	c := NewIdempotencyCache(time.Minute)
	defer c.Stop()

	require.True(t, c.Begin(7))
	assert.False(t, c.Begin(7), "second claim while running")

	c.Complete(7, nil)
	assert.True(t, c.Begin(7), "released after failure")
	c.Complete(7, &cachedResponse{StatusCode: http.StatusOK, Body: []byte("{}")})

	resp, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, c.Len())
}

func TestIdempotencyCache_Expiry(t *testing.T) {
	c := NewIdempotencyCache(time.Minute)
	defer c.Stop()

	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }
	c.Complete(1, &cachedResponse{StatusCode: http.StatusOK})

	now = now.Add(2 * time.Minute)
	_, ok := c.Get(1)
	assert.False(t, ok)

	c.removeExpired()
	assert.Zero(t, c.Len())
}

func TestRequestFingerprint_KeepsBodyReadable(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(`{"a":1}`))
	k1, ok := requestFingerprint("key", "s", req)
	require.True(t, ok)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(body))

	req2 := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(`{"a":1}`))
	k2, _ := requestFingerprint("key", "s", req2)
	assert.Equal(t, k1, k2)

	big := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(strings.Repeat("x", maxIdempotentBody+1)))
	_, ok = requestFingerprint("key", "s", big)
	assert.False(t, ok)
}
