package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/saas-platform-api/internal/api/dto"
)

func main() {
	server := flag.String("server", "ws://localhost:10000", "API base URL")
	tenantID := flag.String("tenant", "", "Tenant to watch (admin tokens only)")
	entity := flag.String("entity", "", "Only print events for this entity (tenant, customer, user, user_role)")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/app [-server URL] [-tenant ID] [-entity NAME] <JWT_TOKEN>")
	}

	streamURL, err := url.Parse(*server + "/api/v1/changes/stream")
	if err != nil {
		log.Fatal("Invalid server URL:", err)
	}
	if *tenantID != "" {
		streamURL.RawQuery = url.Values{"tenantId": {*tenantID}}.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+flag.Arg(0))
	fmt.Printf("Connecting to %s...\n", streamURL)
	conn, resp, err := websocket.DefaultDialer.Dial(streamURL.String(), header)
	if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
		log.Fatalf("Server refused the stream: %s", resp.Status)
	}
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()
	conn.SetPingHandler(func(appData string) error {
		fmt.Println("Received ping from server, sending pong")
		return conn.WriteMessage(websocket.PongMessage, nil)
	})

	fmt.Println("Connected! Waiting for change events...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			var event dto.ChangeEvent
			if err := json.Unmarshal(message, &event); err != nil {
				log.Println("Malformed event:", err)
				continue
			}
			if *entity != "" && event.Entity != *entity {
				continue
			}
			actor := event.ActorID
			if actor == "" {
				actor = "-"
			}
			fmt.Printf("%s %-9s %-7s %s by %s\n", event.Timestamp.Format(time.RFC3339), event.Entity, event.Action, event.EntityID, actor)
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
