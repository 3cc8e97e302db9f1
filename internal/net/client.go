package net

import (
	"fmt"
	"log"

	"github.com/gorilla/websocket"
)

// Connect joins a host at addr (host:port) and calls apply for every
// snapshot it sends. It blocks until the connection drops.
func Connect(addr string, apply func(Snapshot)) error {
	url := fmt.Sprintf("ws://%s/ws", addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("could not reach host at %s: %w", addr, err)
	}
	defer conn.Close()
	log.Println("Connected to host", addr)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("connection to host lost: %w", err)
		}
		snap, err := DecodeSnapshot(data)
		if err != nil {
			log.Printf("Ignoring bad snapshot: %v", err)
			continue
		}
		apply(snap)
	}
}
