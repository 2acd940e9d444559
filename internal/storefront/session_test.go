package storefront

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClockedStore(ttl time.Duration) (*SessionStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)}
	st := NewSessionStore(ttl)
	st.now = clock.Now
	return st, clock
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	st, _ := newClockedStore(time.Hour)

	s := st.Create()
	require.NotEmpty(t, s.ID)
	assert.True(t, s.cart.IsEmpty())

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("unknown")
	assert.False(t, ok)
	_, ok = st.Get("")
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
}

func TestSessionStore_GetOrCreate(t *testing.T) {
	st, _ := newClockedStore(time.Hour)

	s, created := st.GetOrCreate("")
	assert.True(t, created)

	again, created := st.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := st.GetOrCreate("forged-id")
	assert.True(t, created)
	assert.NotEqual(t, "forged-id", other.ID, "ids are never taken from the client")
}

func TestSessionStore_Expiry(t *testing.T) {
	st, clock := newClockedStore(time.Hour)
	s := st.Create()

	clock.Advance(50 * time.Minute)
	_, ok := st.Get(s.ID)
	require.True(t, ok, "access refreshes the idle timer")

	clock.Advance(50 * time.Minute)
	_, ok = st.Get(s.ID)
	require.True(t, ok)

	clock.Advance(61 * time.Minute)
	_, ok = st.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	st, clock := newClockedStore(time.Hour)
	old := st.Create()
	clock.Advance(40 * time.Minute)
	fresh := st.Create()
	clock.Advance(30 * time.Minute)

	assert.Equal(t, 1, st.Sweep())

	_, ok := st.Get(old.ID)
	assert.False(t, ok)
	_, ok = st.Get(fresh.ID)
	assert.True(t, ok)
}

func TestSessionStore_RunSweeper(t *testing.T) {
	st, clock := newClockedStore(time.Minute)
	st.Create()
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		st.RunSweeper(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestNewSessionStore_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultSessionTTL, NewSessionStore(0).ttl)
}
