package ws

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one connected game socket. Writes are serialized with a mutex
// because broadcasts and direct replies can race on the same connection.
type Client struct {
	ID      string
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewClient wraps an upgraded connection
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		conn: conn,
	}
}

// Send writes one event to the client
func (c *Client) Send(event Event) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(event)
}

// ReadEvent blocks until the next client event arrives
func (c *Client) ReadEvent() (Event, error) {
	var event Event
	err := c.conn.ReadJSON(&event)
	return event, err
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}
