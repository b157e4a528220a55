package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	failing  bool
	closed   bool
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	c.messages = append(c.messages, buf)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received(t *testing.T) []map[string]interface{} {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]map[string]interface{}, 0, len(c.messages))
	for _, raw := range c.messages {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &m))
		out = append(out, m)
	}
	return out
}

func TestSendToNoConnections(t *testing.T) {
	hub := NewHub()
	// Must not panic or error when nobody is listening.
	hub.SendTo("nobody", map[string]string{"hello": "there"})
}

func TestSendToReachesEveryConnWithID(t *testing.T) {
	hub := NewHub()
	tab1 := &fakeConn{}
	tab2 := &fakeConn{}
	other := &fakeConn{}
	hub.Register(tab1, "rider-1")
	hub.Register(tab2, "rider-1")
	hub.Register(other, "rider-2")

	hub.SendTo("rider-1", map[string]string{"type": "challenge"})

	assert.Len(t, tab1.received(t), 1)
	assert.Len(t, tab2.received(t), 1)
	assert.Empty(t, other.received(t))
}

func TestBroadcastAllReachesEveryone(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	b := &fakeConn{}
	hub.Register(a, "rider-1")
	hub.Register(b, "rider-2")

	hub.BroadcastAll(PresenceUpdate{ID: "rider-1", Lat: 37.0, Lng: -122.0})

	got := b.received(t)
	require.Len(t, got, 1)
	assert.Equal(t, "rider-1", got[0]["id"])
	assert.Equal(t, 37.0, got[0]["lat"])
	assert.Equal(t, -122.0, got[0]["lng"])
	assert.Len(t, a.received(t), 1)
}

func TestBroadcastSkipsFailedConn(t *testing.T) {
	hub := NewHub()
	dead := &fakeConn{failing: true}
	alive := &fakeConn{}
	hub.Register(dead, "rider-1")
	hub.Register(alive, "rider-2")

	hub.BroadcastAll(map[string]string{"n": "1"})

	require.Len(t, alive.received(t), 1)
	assert.True(t, dead.closed)

	// The failed conn is gone from the registry: a second broadcast only
	// reaches the live one.
	hub.BroadcastAll(map[string]string{"n": "2"})
	assert.Len(t, alive.received(t), 2)
	assert.Empty(t, dead.messages)
}

func TestUnregisterIdempotent(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(conn, "rider-1")

	hub.Unregister(conn)
	assert.True(t, conn.closed)
	hub.Unregister(conn)

	hub.SendTo("rider-1", map[string]string{"type": "challenge"})
	assert.Empty(t, conn.received(t))
}

func TestPerConnectionOrderPreserved(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	hub.Register(conn, "rider-1")

	for i := 0; i < 10; i++ {
		hub.SendTo("rider-1", map[string]int{"seq": i})
	}

	got := conn.received(t)
	require.Len(t, got, 10)
	for i, m := range got {
		assert.Equal(t, float64(i), m["seq"])
	}
}
