// Package websocket pushes board snapshots to browsers watching a game.
//
// A single Hub goroutine owns the set of connected clients, grouped by
// session ID. After every successful action the REST layer calls
// BroadcastSnapshot and each client of that session receives a
// "state_update" message carrying the full engine.GameSnapshot. Clients
// only watch: anything they send is read and discarded so that control
// frames keep flowing.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
//
// A client that cannot keep up with its send buffer is dropped.
package websocket
