// Package api provides the HTTP REST API of the sinking island server.
//
// Session Management:
//   - POST /api/sessions - Create a session from {"config_id", "players"}
//   - GET /api/sessions - List sessions (?config=, ?sort=created|accessed, ?order=, ?limit=)
//   - GET /api/sessions/{id} - Get one session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Reading the board:
//   - GET /api/sessions/{id}/state - Full board snapshot
//   - GET /api/sessions/{id}/history - Event history (?page=, ?limit=, ?order=asc|desc)
//   - GET /api/sessions/{id}/pawns/{pawn}/targets - Hexes a pawn can reach now
//   - GET /api/sessions/{id}/hexes/{x}/{y}/{z} - One hex, its occupants and the nearest coral
//
// Game Operations (all POST):
//   - /api/sessions/{id}/pawns/{pawn}/move with {"to": {"x","y","z"}}
//   - /api/sessions/{id}/actors/{actor}/move with {"to": ...}
//   - /api/sessions/{id}/transports/{transport}/move with {"to": ...}
//   - /api/sessions/{id}/flip with {"at": ...}
//   - /api/sessions/{id}/spin
//   - /api/sessions/{id}/skip
//
// A move the rules forbid is not an HTTP error: the response is 200 with
// "success": false and the reason in "message". Unknown sessions and
// configs are 404, malformed bodies and invalid configs are 400.
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Load one configuration
//   - POST /api/configs - Save a configuration
//
// Live updates: GET /ws?session={id} upgrades to a WebSocket that receives
// a "state_update" snapshot after every successful action.
package api
