package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wricardo/sinking-island/game/engine"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{
		hub:       hub,
		sessionID: sessionID,
		send:      make(chan []byte, 256),
	}
}

func testSnapshot() *engine.GameSnapshot {
	return &engine.GameSnapshot{
		State:        engine.GameState{Phase: engine.Spinning, CurrentPlayer: 2},
		IslandRadius: 3,
		LastSpin:     &engine.SpinResult{Section: "shark", Moves: "2"},
	}
}

// waitForClients polls the running hub until the session has want clients
func waitForClients(t *testing.T, hub *Hub, sessionID string, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount(sessionID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("session %s never reached %d clients (have %d)", sessionID, want, hub.ClientCount(sessionID))
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub.sessions == nil {
		t.Error("Hub sessions map is nil")
	}
	if hub.broadcast == nil || hub.register == nil || hub.unregister == nil {
		t.Error("Hub channels are not initialised")
	}
}

func TestHubRegisterAndUnregister(t *testing.T) {
	hub := NewHub()
	sessionID := "multi-client-session"

	client1 := newTestClient(hub, sessionID)
	client2 := newTestClient(hub, sessionID)

	hub.registerClient(client1)
	hub.registerClient(client2)

	if len(hub.sessions[sessionID]) != 2 {
		t.Errorf("Expected 2 clients in session, got %d", len(hub.sessions[sessionID]))
	}

	hub.unregisterClient(client1)
	if !hub.sessions[sessionID][client2] || len(hub.sessions[sessionID]) != 1 {
		t.Error("client2 should be the only client left")
	}
	if _, open := <-client1.send; open {
		t.Error("unregistered client's send channel should be closed")
	}

	hub.unregisterClient(client2)
	if _, exists := hub.sessions[sessionID]; exists {
		t.Error("Session should have been cleaned up after last client unregistered")
	}

	// Unregistering twice is harmless
	hub.unregisterClient(client2)
}

func TestHubBroadcastMessageOnlyReachesSession(t *testing.T) {
	hub := NewHub()
	watcher := newTestClient(hub, "island")
	other := newTestClient(hub, "elsewhere")
	hub.registerClient(watcher)
	hub.registerClient(other)

	hub.broadcastMessage(&Message{SessionID: "island", Snapshot: testSnapshot(), Event: StateUpdateEvent})

	select {
	case data := <-watcher.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.Event != StateUpdateEvent || message.SessionID != "island" {
			t.Errorf("unexpected message %+v", message)
		}
		if message.Snapshot == nil || message.Snapshot.State.Phase != engine.Spinning {
			t.Errorf("snapshot not transmitted: %+v", message.Snapshot)
		}
	default:
		t.Error("watcher received nothing")
	}

	select {
	case data := <-other.send:
		t.Errorf("other session received %s", data)
	default:
	}
}

func TestHubDropsSlowClients(t *testing.T) {
	hub := NewHub()
	slow := &Client{hub: hub, sessionID: "slow", send: make(chan []byte)}
	hub.registerClient(slow)

	hub.broadcastMessage(&Message{SessionID: "slow", Event: "ping"})

	if _, exists := hub.sessions["slow"]; exists {
		t.Error("a client that cannot receive should be dropped")
	}
}

func TestHubBroadcastEventIsQueued(t *testing.T) {
	hub := NewHub()

	hub.BroadcastEvent("event-test", "custom-event", "test-data")

	select {
	case message := <-hub.broadcast:
		if message.SessionID != "event-test" || message.Event != "custom-event" || message.Data != "test-data" {
			t.Errorf("unexpected message %+v", message)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("No broadcast message queued")
	}
}

func TestHubCallsReturnAfterStop(t *testing.T) {
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run()
		close(stopped)
	}()
	hub.Stop()
	<-stopped

	done := make(chan int)
	go func() {
		for i := 0; i < 2*cap(hub.broadcast); i++ {
			hub.BroadcastSnapshot("after-stop", testSnapshot())
			hub.BroadcastEvent("after-stop", "custom-event", i)
		}
		done <- hub.ClientCount("after-stop")
	}()

	select {
	case n := <-done:
		if n != 0 {
			t.Errorf("ClientCount after Stop = %d, want 0", n)
		}
	case <-time.After(time.Second):
		t.Fatal("hub calls blocked after Stop")
	}
}

func TestWebSocketLifecycle(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, r.URL.Query().Get("session"))
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=ws-test"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	waitForClients(t, hub, "ws-test", 1)

	hub.BroadcastSnapshot("ws-test", testSnapshot())

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, messageData, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	var message Message
	if err := json.Unmarshal(messageData, &message); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}
	if message.SessionID != "ws-test" || message.Event != StateUpdateEvent {
		t.Errorf("unexpected message %+v", message)
	}
	if message.Snapshot == nil || message.Snapshot.LastSpin == nil || message.Snapshot.LastSpin.Moves != "2" {
		t.Errorf("snapshot not received intact: %+v", message.Snapshot)
	}

	conn.Close()
	waitForClients(t, hub, "ws-test", 0)
}
