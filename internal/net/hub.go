package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub accepts websocket viewers and fans curve snapshots out to them.
// Viewers never send edits back; their connection is read only to notice
// when they leave.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]bool

	// Snapshot returns the current curve encoded for the wire. It is
	// called once per joining viewer so they start in sync.
	Snapshot func() []byte

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// Viewers come from the LAN, not a browser origin we control.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Listen serves the viewer endpoint until the listener fails.
func (h *Hub) Listen(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	log.Printf("Share hub listening on :%d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Upgrade failed: %v", err)
		return
	}

	// Catch the viewer up before it joins the broadcast set, so this
	// write never races a Broadcast on the same connection.
	if h.Snapshot != nil {
		if data := h.Snapshot(); data != nil {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("Initial snapshot failed: %v", err)
				conn.Close()
				return
			}
		}
	}

	h.add(conn)

	// Drain incoming frames so we see the close.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	log.Printf("Viewer joined (%d connected)", len(h.conns))
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[conn] {
		delete(h.conns, conn)
		conn.Close()
		log.Printf("Viewer left (%d connected)", len(h.conns))
	}
}

// Broadcast sends a snapshot to every connected viewer, dropping any
// connection that can no longer be written to.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(conn)
		}
	}
}

func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
