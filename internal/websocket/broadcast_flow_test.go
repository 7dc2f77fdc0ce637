package websocket_test

import (
	"testing"
	"time"

	"github.com/ayune/ayune-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastFlow_EchoToAllClients(t *testing.T) {
	ts := testutil.NewTestServer(t)

	c1 := testutil.NewWSClient(t, ts.WebSocketURL())
	c2 := testutil.NewWSClient(t, ts.WebSocketURL())

	require.Eventually(t, func() bool {
		return ts.Hub.ClientCount() == 2
	}, 5*time.Second, 20*time.Millisecond)

	c1.Send("hello")

	got1, err := c1.WaitForMessage(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", got1, "sender should receive its own message")

	got2, err := c2.WaitForMessage(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", got2)
}

func TestBroadcastFlow_DisconnectedClientIsSkipped(t *testing.T) {
	ts := testutil.NewTestServer(t)

	c1 := testutil.NewWSClient(t, ts.WebSocketURL())
	c2 := testutil.NewWSClient(t, ts.WebSocketURL())

	require.Eventually(t, func() bool {
		return ts.Hub.ClientCount() == 2
	}, 5*time.Second, 20*time.Millisecond)

	c2.Close()

	require.Eventually(t, func() bool {
		return ts.Hub.ClientCount() == 1
	}, 5*time.Second, 20*time.Millisecond)

	c1.Send("again")

	got, err := c1.WaitForMessage(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "again", got, "remaining client still receives broadcasts")
}

func TestBroadcastFlow_OrderPreservedPerSender(t *testing.T) {
	ts := testutil.NewTestServer(t)

	sender := testutil.NewWSClient(t, ts.WebSocketURL())
	receiver := testutil.NewWSClient(t, ts.WebSocketURL())

	require.Eventually(t, func() bool {
		return ts.Hub.ClientCount() == 2
	}, 5*time.Second, 20*time.Millisecond)

	payloads := []string{"first", "second", "third"}
	for _, p := range payloads {
		sender.Send(p)
	}

	for _, want := range payloads {
		got, err := receiver.WaitForMessage(3 * time.Second)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
