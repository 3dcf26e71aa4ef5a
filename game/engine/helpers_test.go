package engine

import (
	"os"
	"testing"
)

// newTestEngine returns a two player engine over an empty board
func newTestEngine(t *testing.T, opts ...Option) *GameEngine {
	t.Helper()
	opts = append([]Option{WithSeed(1)}, opts...)
	return NewBareEngine(NewPlayers(2, 3), opts...)
}

// buildDisc adds every hex within radius of the centre with the given terrain
func buildDisc(e *GameEngine, radius int, t PieceType) {
	for x := -radius; x <= radius; x++ {
		for y := max(-radius, -x-radius); y <= min(radius, -x+radius); y++ {
			e.AddHexToBoard(NewCubeCoordinate(x, y, -x-y), t)
		}
	}
}

// addRing adds the hexes exactly radius away from the centre
func addRing(e *GameEngine, radius int, t PieceType) {
	for x := -radius; x <= radius; x++ {
		for y := max(-radius, -x-radius); y <= min(radius, -x+radius); y++ {
			c := NewCubeCoordinate(x, y, -x-y)
			if Distance(origin, c) == radius {
				e.AddHexToBoard(c, t)
			}
		}
	}
}

func mustAddPawn(t *testing.T, e *GameEngine, playerID, pawnID int, c CubeCoordinate) {
	t.Helper()
	if err := e.board.AddPawn(playerID, pawnID, c); err != nil {
		t.Fatalf("Failed to add pawn %d: %v", pawnID, err)
	}
}

func mustAddTransport(t *testing.T, e *GameEngine, tr Transport, c CubeCoordinate) {
	t.Helper()
	if err := e.board.AddTransport(tr, c); err != nil {
		t.Fatalf("Failed to add transport %d: %v", tr.ID(), err)
	}
}

func mustAddActor(t *testing.T, e *GameEngine, a Actor, c CubeCoordinate) {
	t.Helper()
	if err := e.board.AddActor(a, c); err != nil {
		t.Fatalf("Failed to add actor %d: %v", a.ID(), err)
	}
}

func setActions(t *testing.T, e *GameEngine, n int) {
	t.Helper()
	p := e.GetCurrentPlayer()
	if p == nil {
		t.Fatal("no current player")
	}
	p.SetActionsLeft(n)
}

// enterSinking skips the movement phase of the current player
func enterSinking(t *testing.T, e *GameEngine) {
	t.Helper()
	if err := e.Skip(); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if e.CurrentGamePhase() != Sinking {
		t.Fatalf("phase = %s, want sinking", e.CurrentGamePhase())
	}
}

var (
	origin = NewCubeCoordinate(0, 0, 0)
	east   = NewCubeCoordinate(1, -1, 0)
	east2  = NewCubeCoordinate(2, -2, 0)
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
