package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test WebSocket client that records relayed payloads
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	messages chan []byte
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient connects a new WebSocket test client
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		messages: make(chan []byte, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// readPump reads relayed payloads from the connection
func (c *WSClient) readPump() {
	defer close(c.messages)
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				select {
				case <-c.done:
					return
				case c.errors <- err:
				}
				return
			}

			select {
			case c.messages <- data:
			case <-c.done:
				return
			}
		}
	}
}

// Send writes a text payload to the server
func (c *WSClient) Send(payload string) {
	c.t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.WriteMessage(gorillaWS.TextMessage, []byte(payload)); err != nil {
		c.t.Fatalf("failed to send message: %v", err)
	}
}

// WaitForMessage blocks until a payload arrives or the timeout expires
func (c *WSClient) WaitForMessage(timeout time.Duration) (string, error) {
	select {
	case data, ok := <-c.messages:
		if !ok {
			return "", fmt.Errorf("connection closed")
		}
		return string(data), nil
	case err := <-c.errors:
		return "", err
	case <-time.After(timeout):
		return "", fmt.Errorf("timed out waiting for message")
	}
}

// ExpectNoMessage asserts that nothing arrives within the window
func (c *WSClient) ExpectNoMessage(window time.Duration) {
	c.t.Helper()

	select {
	case data, ok := <-c.messages:
		if ok {
			c.t.Fatalf("unexpected message received: %s", string(data))
		}
	case <-time.After(window):
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}
