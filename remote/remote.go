// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package remote broadcasts navigator highlight events to
// WebSocket clients, so that views running in other processes
// or browsers can follow the selection.
package remote

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/civil/navigator"
	"cogentcore.org/core/base/errors"
	"github.com/gorilla/websocket"
)

// Message is the JSON message sent to clients for every highlight event.
type Message struct {
	View      string `json:"view"`
	Alignment string `json:"alignment"`
	Kind      string `json:"kind"`
	Index     int    `json:"index"`
	Type      string `json:"type"`
}

// MessageFromEvent returns the [Message] for the given highlight event,
// and false if the event has no curve.
func MessageFromEvent(ev *navigator.HighlightEvent) (Message, bool) {
	cv := ev.Curve()
	if cv == nil {
		return Message{}, false
	}
	msg := Message{Alignment: cv.Alignment.Name, Kind: cv.Kind.String(), Index: cv.Index, Type: cv.Type}
	if ev.Navigator != nil {
		msg.View = ev.Navigator.Name
	}
	return msg, true
}

// sendBuffer is the number of messages buffered per client;
// clients that fall further behind are dropped.
const sendBuffer = 16

// writeWait is the time allowed to write a message to a client.
const writeWait = 5 * time.Second

// Hub is an [http.Handler] that accepts WebSocket clients and
// broadcasts highlight messages to all of them. Broadcasting never
// blocks the caller: each client has its own writer goroutine.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub returns a new [Hub] with no clients.
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Listen broadcasts every highlight event of the given navigator.
func (h *Hub) Listen(nv *navigator.Navigator) {
	nv.OnHighlight(func(ev *navigator.HighlightEvent) {
		msg, ok := MessageFromEvent(ev)
		if !ok {
			return
		}
		errors.Log(h.Broadcast(msg))
	})
}

// Broadcast sends the given message to all clients.
func (h *Hub) Broadcast(msg Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- b:
		default:
			slog.Warn("remote: dropping slow client", "addr", c.conn.RemoteAddr().String())
			h.remove(c)
		}
	}
	return nil
}

// NumClients returns the number of connected clients.
func (h *Hub) NumClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.remove(c)
	}
}

// remove must be called with the mutex held.
func (h *Hub) remove(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// ServeHTTP upgrades the connection to a WebSocket and registers the
// client until it disconnects. Messages from clients are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go c.write()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.mu.Lock()
	h.remove(c)
	h.mu.Unlock()
}

// write sends queued messages until the send channel is closed,
// then closes the connection.
func (c *client) write() {
	defer c.conn.Close()
	for b := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
