package kernel_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/firelovers/storefront/internal/kernel"
	"github.com/firelovers/storefront/pkg/ws"
)

// The /ws upgrade must survive the full middleware stack: the metrics and
// logger wrappers sit between gorilla and the real connection, and both have
// to hand over the hijackable writer.
func TestWebsocketUpgradeThroughMiddleware(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()

	srv := httptest.NewServer(kernel.New(kernel.Deps{Hub: hub}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Fatalf("dial %s: %v (status %d)", url, err, status)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered with the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}

	frame := []byte(`{"channel":"products","type":"create"}`)
	hub.Broadcast <- frame

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, got, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if string(got) != string(frame) {
		t.Fatalf("got frame %s", got)
	}
}

func TestWebsocketRejectsPlainGet(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()

	srv := httptest.NewServer(kernel.New(kernel.Deps{Hub: hub}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ws")
	if err != nil {
		t.Fatalf("get /ws: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-upgrade request, got %d", resp.StatusCode)
	}
}
