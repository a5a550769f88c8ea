package websocket

import (
	"context"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	sendBufferSize = 64
	pingInterval   = 15 * time.Second
	writeTimeout   = 10 * time.Second
)

type client struct {
	conn *websocket.Conn
	send chan Message
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan Message, sendBufferSize),
	}
}

func (that *client) enqueue(msg Message) bool {
	select {
	case that.send <- msg:
		return true
	default:
		return false
	}
}

// writeLoop drains the send buffer and keeps the connection alive until ctx is done
// or a write fails.
func (that *client) writeLoop(ctx context.Context) error {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-that.send:
			if err := that.write(ctx, msg); err != nil {
				return err
			}
		case <-ping.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := that.conn.Ping(pingCtx)
			cancel()

			if err != nil {
				return err
			}
		}
	}
}

func (that *client) write(ctx context.Context, msg Message) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return wsjson.Write(writeCtx, that.conn, msg)
}
