// Package engine implements the rules of the sinking island game.
//
// The board is a set of hexes addressed by cube coordinates. Pawns, actors
// and transports live in the Board's registries; each Hex records only the
// ids of its occupants, so every move keeps both sides consistent within a
// single call.
//
// Core Types:
//
// GameEngine mediates every mutation and drives the turn phases
// (movement, sinking, spinning). Each mutating operation has a matching
// check that reports legality without side effects, so a UI can poll checks
// for hinting and call the move afterwards. Failed moves return an error
// wrapping ErrIllegalMove and leave the board untouched.
//
// Usage:
//
//	config := engine.DefaultGameConfig(2)
//	game, err := engine.NewEngine(config, nil, engine.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	left, err := game.MovePawn(
//		engine.NewCubeCoordinate(-1, 1, 0),
//		engine.NewCubeCoordinate(-1, 2, -1),
//		engine.PawnID(1, 1),
//	)
//
// Game Rules:
//
// Each turn a player spends up to three actions moving pawns over land or
// steering transports, then sinks one land tile, revealing a hazard or a
// transport, then spins the wheel to move a hazard or transport. The outer
// terrain sinks first. A player wins by bringing a pawn to a coral hex, or
// by being the last player with pawns on the board.
package engine
