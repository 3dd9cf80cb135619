package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	hub.Start()

	conn1 := &Connection{Send: make(chan []byte, 4)}
	conn2 := &Connection{Send: make(chan []byte, 4)}
	hub.Register(conn1)
	hub.Register(conn2)

	err := hub.Broadcast(map[string]string{"type": "tasks_updated"})
	require.NoError(t, err)

	for _, conn := range []*Connection{conn1, conn2} {
		select {
		case data := <-conn.Send:
			var msg map[string]string
			require.NoError(t, json.Unmarshal(data, &msg))
			assert.Equal(t, "tasks_updated", msg["type"])
		case <-time.After(500 * time.Millisecond):
			t.Fatal("未在超时前收到广播")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	hub.Start()

	conn := &Connection{Send: make(chan []byte, 1)}
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok, "注销后发送通道应关闭")
	case <-time.After(500 * time.Millisecond):
		t.Fatal("注销后发送通道未关闭")
	}
}
