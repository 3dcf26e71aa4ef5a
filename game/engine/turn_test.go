package engine

import (
	"errors"
	"testing"
)

func TestSkipAdvancesPhases(t *testing.T) {
	e := layeredEngine(t)
	mustAddPawn(t, e, 1, 11, NewCubeCoordinate(-1, 1, 0))
	mustAddPawn(t, e, 2, 21, NewCubeCoordinate(-1, 0, 1))

	if err := e.Skip(); err != nil {
		t.Fatalf("Skip during movement failed: %v", err)
	}
	if e.CurrentGamePhase() != Sinking {
		t.Fatalf("phase = %s, want sinking", e.CurrentGamePhase())
	}
	if err := e.Skip(); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("Skip during sinking should be illegal, got %v", err)
	}

	if _, err := e.FlipTile(east); err != nil {
		t.Fatalf("FlipTile failed: %v", err)
	}
	if err := e.Skip(); err != nil {
		t.Fatalf("Skip during spinning failed: %v", err)
	}
	if e.CurrentPlayer() != 2 || e.CurrentGamePhase() != Movement {
		t.Errorf("player=%d phase=%s, want player 2 in movement", e.CurrentPlayer(), e.CurrentGamePhase())
	}
	if e.GetCurrentPlayer().ActionsLeft() != MaxActionsPerTurn {
		t.Errorf("actions = %d, want %d", e.GetCurrentPlayer().ActionsLeft(), MaxActionsPerTurn)
	}
}

func TestEndTurnSkipsPlayersWithoutPawns(t *testing.T) {
	e := NewBareEngine(NewPlayers(3, 1), WithSeed(1))
	e.AddHexToBoard(origin, Forest)
	mustAddPawn(t, e, 1, 11, origin)
	mustAddPawn(t, e, 3, 31, origin)

	e.EndTurn()
	if e.CurrentPlayer() != 3 {
		t.Errorf("current player = %d, want 3", e.CurrentPlayer())
	}
	e.EndTurn()
	if e.CurrentPlayer() != 1 {
		t.Errorf("current player = %d, want 1", e.CurrentPlayer())
	}
}

func TestEndTurnWrapsOnEmptyBoard(t *testing.T) {
	e := newTestEngine(t)
	e.EndTurn()
	e.EndTurn()
	if e.CurrentPlayer() != 1 {
		t.Errorf("current player = %d, want 1", e.CurrentPlayer())
	}

	var passes int
	for _, ev := range e.History() {
		if ev.Kind == EventTurnPassed {
			passes++
		}
	}
	if passes != 2 {
		t.Errorf("recorded %d turn passes, want 2", passes)
	}
}

func TestPlayerQueries(t *testing.T) {
	e := newTestEngine(t)
	if e.PlayerAmount() != 2 {
		t.Errorf("PlayerAmount = %d, want 2", e.PlayerAmount())
	}
	if e.CurrentPlayer() != 1 || e.GetCurrentPlayer().PlayerID() != 1 {
		t.Error("player 1 should start")
	}
	if _, ok := e.Player(7); ok {
		t.Error("unknown player id should not be found")
	}
	if got := e.GetCurrentPlayer().StartingCoordinates(); got != NewCubeCoordinate(-1, 1, 0) {
		t.Errorf("player 1 starts at %s", got)
	}
}
