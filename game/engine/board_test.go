package engine

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddHexRoundTrip(t *testing.T) {
	b := NewBoard()
	c := NewCubeCoordinate(2, -1, -1)
	b.AddHex(NewHex(c, Forest))

	h := b.Hex(c)
	if h == nil {
		t.Fatal("expected hex after AddHex")
	}
	if h.Coordinates() != c {
		t.Errorf("hex coordinates = %s, want %s", h.Coordinates(), c)
	}
	if b.Hex(origin) != nil {
		t.Error("lookup of a missing coordinate should return nil")
	}
}

func TestAddHexLinksExistingNeighbours(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(origin, Peak))
	b.AddHex(NewHex(east, Forest))
	b.AddHex(NewHex(NewCubeCoordinate(5, -5, 0), Water))

	if diff := cmp.Diff([]CubeCoordinate{east}, b.Hex(origin).Neighbours()); diff != "" {
		t.Errorf("origin neighbours mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]CubeCoordinate{origin}, b.Hex(east).Neighbours()); diff != "" {
		t.Errorf("east neighbours mismatch (-want +got):\n%s", diff)
	}
	if got := b.Hex(NewCubeCoordinate(5, -5, 0)).Neighbours(); len(got) != 0 {
		t.Errorf("isolated hex should have no neighbours, got %v", got)
	}
}

func TestAddHexReplacesExisting(t *testing.T) {
	b := NewBoard()
	old := NewHex(origin, Forest)
	b.AddHex(old)
	if err := b.AddPawn(1, 11, origin); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}

	replacement := NewHex(origin, Water)
	b.AddHex(replacement)

	if b.Hex(origin) != replacement {
		t.Fatal("board still returns the replaced hex")
	}
	if b.HexCount() != 1 {
		t.Errorf("expected 1 hex, got %d", b.HexCount())
	}
	if !replacement.HasPawn(11) {
		t.Error("pawn should be carried over to the replacement hex")
	}
}

func TestMovePawnToMissingHexIsNoop(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(origin, Forest))
	if err := b.AddPawn(1, 11, origin); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}

	b.MovePawn(11, east)

	at, _ := b.PawnCoordinates(11)
	if at != origin {
		t.Errorf("pawn moved to %s, want it to stay at %s", at, origin)
	}
	if !b.Hex(origin).HasPawn(11) {
		t.Error("origin hex lost the pawn")
	}
}

func TestAddPawnErrors(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(origin, Forest))

	if err := b.AddPawn(1, 11, east); err == nil {
		t.Error("expected error adding a pawn to a missing hex")
	}
	if err := b.AddPawn(1, 11, origin); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}
	if err := b.AddPawn(1, 11, origin); err == nil {
		t.Error("expected error adding a duplicate pawn id")
	}
}

func TestMoveTransportCarriesRiders(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(east, Water))
	b.AddHex(NewHex(east2, Water))
	if err := b.AddPawn(1, 11, east); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}
	if err := b.AddPawn(2, 21, east); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}
	if err := b.AddTransport(NewBoat(1), east); err != nil {
		t.Fatalf("Failed to add boat: %v", err)
	}
	if !b.BoardTransport(11, 1) {
		t.Fatal("pawn 11 should board the boat")
	}

	b.MoveTransport(1, east2)

	if at, _ := b.TransportCoordinates(1); at != east2 {
		t.Errorf("boat at %s, want %s", at, east2)
	}
	if at, _ := b.PawnCoordinates(11); at != east2 {
		t.Errorf("rider at %s, want %s", at, east2)
	}
	if at, _ := b.PawnCoordinates(21); at != east {
		t.Errorf("swimmer at %s, want %s", at, east)
	}
	if diff := cmp.Diff([]int{21}, b.Hex(east).PawnIDs()); diff != "" {
		t.Errorf("source pawns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{11}, b.Hex(east2).PawnIDs()); diff != "" {
		t.Errorf("target pawns mismatch (-want +got):\n%s", diff)
	}
}

func TestMovePawnLeavesTransport(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(east, Water))
	b.AddHex(NewHex(east2, Water))
	if err := b.AddPawn(1, 11, east); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}
	if err := b.AddTransport(NewBoat(1), east); err != nil {
		t.Fatalf("Failed to add boat: %v", err)
	}
	b.BoardTransport(11, 1)

	b.MovePawn(11, east2)

	boat, _ := b.Transport(1)
	if boat.HasPawn(11) {
		t.Error("pawn should have left the boat")
	}
	if _, riding := b.TransportOf(11); riding {
		t.Error("TransportOf should report no transport")
	}
}

func TestBoardTransportRules(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(east, Water))
	b.AddHex(NewHex(east2, Water))
	if err := b.AddTransport(NewDolphin(1), east); err != nil {
		t.Fatalf("Failed to add dolphin: %v", err)
	}
	for _, id := range []int{11, 12} {
		if err := b.AddPawn(1, id, east); err != nil {
			t.Fatalf("Failed to add pawn: %v", err)
		}
	}
	if err := b.AddPawn(1, 13, east2); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}

	if b.BoardTransport(13, 1) {
		t.Error("pawn on another hex should not board")
	}
	if !b.BoardTransport(11, 1) {
		t.Error("first pawn should board the dolphin")
	}
	if b.BoardTransport(12, 1) {
		t.Error("dolphin has a single seat")
	}
	if b.BoardTransport(11, 1) {
		t.Error("a pawn cannot board twice")
	}
}

func TestRemoveTransportLeavesRidersOnHex(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(east, Water))
	if err := b.AddPawn(1, 11, east); err != nil {
		t.Fatalf("Failed to add pawn: %v", err)
	}
	if err := b.AddTransport(NewBoat(1), east); err != nil {
		t.Fatalf("Failed to add boat: %v", err)
	}
	b.BoardTransport(11, 1)

	b.RemoveTransport(1)

	if _, ok := b.Transport(1); ok {
		t.Error("transport should be gone")
	}
	if b.Hex(east).TransportAmount() != 0 {
		t.Error("hex still lists the transport")
	}
	if !b.Hex(east).HasPawn(11) {
		t.Error("rider should remain on the hex")
	}
}

func TestImmobileActorDoesNotMove(t *testing.T) {
	b := NewBoard()
	b.AddHex(NewHex(east, Water))
	b.AddHex(NewHex(east2, Water))
	if err := b.AddActor(NewVortex(1), east); err != nil {
		t.Fatalf("Failed to add vortex: %v", err)
	}
	if err := b.AddActor(NewShark(2), east); err != nil {
		t.Fatalf("Failed to add shark: %v", err)
	}

	b.MoveActor(1, east2)
	b.MoveActor(2, east2)

	if at, _ := b.ActorCoordinates(1); at != east {
		t.Errorf("vortex moved to %s", at)
	}
	if at, _ := b.ActorCoordinates(2); at != east2 {
		t.Errorf("shark at %s, want %s", at, east2)
	}
	if !slices.Equal(b.Hex(east).ActorIDs(), []int{1}) {
		t.Errorf("east actors = %v, want [1]", b.Hex(east).ActorIDs())
	}
}
