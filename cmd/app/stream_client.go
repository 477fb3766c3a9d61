// Command app tails a tenant's live audit log stream. It requests a
// token for a seeded user, then follows /logs/stream until interrupted.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: app <user-id>   (e.g. app user-1)")
	}

	host := os.Getenv("ADMIN_API_HOST")
	if host == "" {
		host = "localhost:10000"
	}

	token, tenantID, err := fetchToken(host, os.Args[1])
	if err != nil {
		log.Fatal("Failed to get token: ", err)
	}
	fmt.Printf("Streaming audit logs for tenant %s...\n", tenantID)

	url := "ws://" + host + "/api/v1/logs/stream"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		log.Fatal("Failed to connect: ", err)
	}
	defer conn.Close()

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
			fmt.Printf("%s\n", string(message))
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}

func fetchToken(host, userID string) (token, tenantID string, err error) {
	body, _ := json.Marshal(map[string]string{"user_id": userID})
	resp, err := http.Post("http://"+host+"/api/v1/auth/token", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("token request failed: %s", resp.Status)
	}

	var parsed struct {
		Token    string `json:"token"`
		TenantID string `json:"tenant_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", "", err
	}
	return parsed.Token, parsed.TenantID, nil
}
