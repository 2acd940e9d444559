package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsawebmaster/delivery/internal/view"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{hub: hub, sessionID: sessionID, send: make(chan []byte, 4)}
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var ev Event
		require.NoError(t, json.Unmarshal(msg, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return Event{}
	}
}

func TestHub_PublishReachesSameSession(t *testing.T) {
	hub, _ := startHub(t)
	a1 := newTestClient(hub, "a")
	a2 := newTestClient(hub, "a")
	b := newTestClient(hub, "b")
	for _, c := range []*Client{a1, a2, b} {
		require.True(t, hub.join(c))
	}
	require.Eventually(t, func() bool { return hub.Clients("a") == 2 }, time.Second, 5*time.Millisecond)

	hub.Publish("a", view.Snapshot{ShowCart: true, Notice: &view.Notice{Message: "x"}})

	for _, c := range []*Client{a1, a2} {
		ev := receive(t, c)
		assert.Equal(t, EventSnapshot, ev.Type)
		var snap view.Snapshot
		require.NoError(t, json.Unmarshal(ev.Payload, &snap))
		assert.True(t, snap.ShowCart)
		assert.Nil(t, snap.Notice, "notices are not pushed")
	}

	select {
	case <-b.send:
		t.Fatal("other session must not receive the snapshot")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub, _ := startHub(t)
	c := newTestClient(hub, "a")
	require.True(t, hub.join(c))
	hub.leave(c)

	select {
	case _, ok := <-c.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
	assert.Equal(t, 0, hub.Clients("a"))
}

func TestHub_SlowClientDropped(t *testing.T) {
	hub, _ := startHub(t)
	c := &Client{hub: hub, sessionID: "a", send: make(chan []byte)}
	require.True(t, hub.join(c))

	hub.Publish("a", view.Snapshot{})
	require.Eventually(t, func() bool { return hub.Clients("a") == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub, cancel := startHub(t)
	c := newTestClient(hub, "a")
	require.True(t, hub.join(c))

	cancel()
	select {
	case _, ok := <-c.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed on shutdown")
	}

	assert.False(t, hub.join(newTestClient(hub, "a")), "stopped hub rejects clients")
}

func TestServeWS_DeliversSnapshot(t *testing.T) {
	hub, _ := startHub(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, "s1", w, r)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients("s1") == 1 }, time.Second, 5*time.Millisecond)
	hub.Publish("s1", view.Snapshot{ClearPostalCode: true})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	assert.Equal(t, EventSnapshot, ev.Type)
	assert.Contains(t, string(ev.Payload), "clear")
}
