package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/rent-dashboard/internal/api/dto"
)

// Watches the live dashboard of the owner whose session token is given.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run ./cmd/app <SESSION_TOKEN> [ws://host:port]")
	}

	token := os.Args[1]
	host := "ws://localhost:10000"
	if len(os.Args) > 2 {
		host = os.Args[2]
	}
	url := host + "/api/v1/dashboard/stream"

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	fmt.Printf("Connecting to %s...\n", url)
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Waiting for dashboard refreshes...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var event dto.DashboardEvent
			if err := conn.ReadJSON(&event); err != nil {
				log.Println("Read error:", err)
				return
			}
			printEvent(event)
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		// Send close message
		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		// Wait for the connection to close
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}

func printEvent(event dto.DashboardEvent) {
	at := "-"
	if event.GeneratedAt != nil {
		at = event.GeneratedAt.Format(time.RFC3339)
	}
	fmt.Printf("#%d generated %s stale=%t\n", event.Sequence, at, event.Stale)
	if event.Error != "" {
		fmt.Printf("  error: %s\n", event.Error)
	}

	names := make([]string, 0, len(event.Fragments))
	for name := range event.Fragments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %d bytes\n", name, len(event.Fragments[name]))
	}
}
