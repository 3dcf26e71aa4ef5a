// Package mcp exposes the game to Model Context Protocol clients.
//
// The Client registers one MCP tool per game operation and proxies every
// call to the REST API, so an agent sees exactly what an HTTP client sees.
//
// MCP Tools:
//   - create_session, list_sessions: session management
//   - game_state: board, sinking ledger and turn state as text
//   - pawn_targets: hexes a pawn can reach with the actions left
//   - describe_hex: one hex, its occupants and the nearest coral
//   - move_pawn, move_actor, move_transport: take x, y, z and an entity id
//   - flip_tile: takes x, y, z
//   - spin_wheel, skip: advance the turn
//   - list_configs, game_instructions
//
// Rule violations come back as ordinary text prefixed with ✗; transport
// and lookup failures come back as tool errors.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
