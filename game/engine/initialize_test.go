package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewEngineBuildsClassicIsland(t *testing.T) {
	e, err := NewEngine(DefaultGameConfig(2), nil, WithSeed(3))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	// Rings 0..7: 1 + 6*(1+...+7) hexes
	if got := e.Board().HexCount(); got != 169 {
		t.Errorf("hex count = %d, want 169", got)
	}
	if e.IslandRadius() != 5 {
		t.Errorf("island radius = %d, want 5", e.IslandRadius())
	}
	want := []PieceCount{
		{Type: Peak, Count: 1},
		{Type: Mountain, Count: 6},
		{Type: Forest, Count: 12},
		{Type: Beach, Count: 42},
	}
	if diff := cmp.Diff(want, e.IslandPieces()); diff != "" {
		t.Errorf("ledger mismatch (-want +got):\n%s", diff)
	}
	if got := CountPieceType(e.Board(), Coral); got != 18 {
		t.Errorf("coral hexes = %d, want 18", got)
	}
	if got := CountPieceType(e.Board(), Water); got != 30+36+24 {
		t.Errorf("water hexes = %d, want %d", got, 30+36+24)
	}
	if e.Board().Hex(origin).PieceType() != Peak {
		t.Errorf("centre is %s, want Peak", e.Board().Hex(origin).PieceType())
	}
}

func TestNewEngineCoralOnlyNearCorners(t *testing.T) {
	e, err := NewEngine(DefaultGameConfig(2), nil, WithSeed(3))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	for _, c := range e.Board().Coordinates() {
		if e.Board().Hex(c).PieceType() != Coral {
			continue
		}
		if abs(c.X) >= DefaultGoalSize && abs(c.Y) >= DefaultGoalSize && abs(c.Z) >= DefaultGoalSize {
			t.Errorf("coral at %s is outside the corner boxes", c)
		}
	}
	if _, d, ok := NearestCoral(e.Board(), origin); !ok || d != 7 {
		t.Errorf("nearest coral distance = %d (%v), want 7", d, ok)
	}
}

func TestNewEnginePlacesPawnsAndBoats(t *testing.T) {
	e, err := NewEngine(DefaultGameConfig(3), nil, WithSeed(3))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	for _, p := range e.Players() {
		start := StartingCoordinatesFor(p.PlayerID())
		for n := 1; n <= DefaultPawnsPerPlayer; n++ {
			at, ok := e.Board().PawnCoordinates(PawnID(p.PlayerID(), n))
			if !ok || at != start {
				t.Errorf("pawn %d at %s (%v), want %s", PawnID(p.PlayerID(), n), at, ok, start)
			}
		}
	}

	wantBoats := []CubeCoordinate{
		NewCubeCoordinate(5, -5, 0),
		NewCubeCoordinate(-5, 5, 0),
		NewCubeCoordinate(0, -5, 5),
	}
	var got []CubeCoordinate
	for _, id := range e.Board().TransportIDs() {
		tr, _ := e.Board().Transport(id)
		if tr.TransportType() != BoatType {
			t.Errorf("transport %d is a %s", id, tr.TransportType())
		}
		at, _ := e.Board().TransportCoordinates(id)
		got = append(got, at)
	}
	if diff := cmp.Diff(wantBoats, got); diff != "" {
		t.Errorf("boat positions mismatch (-want +got):\n%s", diff)
	}
}

func TestCoastPositionsCycleAroundCoast(t *testing.T) {
	for i := 0; i < 12; i++ {
		c := coastPosition(i, 4, i/6)
		if Distance(origin, c) != 4 {
			t.Errorf("coast position %d = %s is not on ring 4", i, c)
		}
	}
}

func TestNewEngineWithoutBoatsLogsAndContinues(t *testing.T) {
	var buf bytes.Buffer
	transports := NewTransportFactory()
	transports.Register(DolphinType, NewDolphin)

	e, err := NewEngine(DefaultGameConfig(2), nil,
		WithTransportFactory(transports),
		WithLogger(log.New(&buf, "", 0)),
	)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if n := len(e.Board().TransportIDs()); n != 0 {
		t.Errorf("expected no transports, got %d", n)
	}
	if !strings.Contains(buf.String(), "Boat setup skipped") {
		t.Errorf("expected a log line about boats, got %q", buf.String())
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	config := DefaultGameConfig(2)
	config.Players = 1
	if _, err := NewEngine(config, nil); err == nil {
		t.Error("expected validation error")
	}
}

func TestNewEngineStartHexStaysWithinPawnLimit(t *testing.T) {
	config := DefaultGameConfig(2)
	config.PawnsPerPlayer = MaxPawnsPerHex + 2
	if _, err := NewEngine(config, nil); err == nil {
		t.Fatal("expected an error for more pawns than a hex can hold")
	}

	config.PawnsPerPlayer = MaxPawnsPerHex
	e, err := NewEngine(config, nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	for _, p := range e.Players() {
		if got := e.board.CheckTileOccupation(p.StartingCoordinates()); got != MaxPawnsPerHex {
			t.Errorf("player %d start hex holds %d pawns, want %d", p.PlayerID(), got, MaxPawnsPerHex)
		}
	}
}

func TestNewEngineConfigSeedIsDeterministic(t *testing.T) {
	config := DefaultGameConfig(2)
	config.Seed = 11

	flip := func() string {
		e, err := NewEngine(config, nil)
		if err != nil {
			t.Fatalf("NewEngine failed: %v", err)
		}
		enterSinking(t, e)
		spawned, err := e.FlipTile(NewCubeCoordinate(-4, 0, 4))
		if err != nil {
			t.Fatalf("FlipTile failed: %v", err)
		}
		return spawned
	}
	if a, b := flip(), flip(); a != b {
		t.Errorf("same seed spawned %q and %q", a, b)
	}
}

func TestSnapshotReflectsBoard(t *testing.T) {
	e, err := NewEngine(DefaultGameConfig(2), nil, WithSeed(3))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	snap := e.Snapshot()

	if len(snap.Hexes) != e.Board().HexCount() {
		t.Errorf("snapshot has %d hexes, want %d", len(snap.Hexes), e.Board().HexCount())
	}
	if len(snap.Pawns) != 2*DefaultPawnsPerPlayer {
		t.Errorf("snapshot has %d pawns", len(snap.Pawns))
	}
	if len(snap.Transports) != 2 || snap.Transports[0].MaxCapacity != 3 {
		t.Errorf("unexpected transports %+v", snap.Transports)
	}
	if snap.State.Phase != Movement || snap.State.CurrentPlayer != 1 {
		t.Errorf("unexpected state %+v", snap.State)
	}

	data, err := json.Marshal(snap.State)
	if err != nil {
		t.Fatalf("Failed to marshal state: %v", err)
	}
	if !strings.Contains(string(data), `"phase":"movement"`) {
		t.Errorf("phase should marshal by name: %s", data)
	}
}

func TestLoadGameConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGameConfig(dir + "/missing.json"); !errors.Is(err, ErrIO) {
		t.Errorf("missing file: expected ErrIO, got %v", err)
	}

	bad := dir + "/bad.json"
	if err := writeFile(bad, "{not json"); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadGameConfig(bad); !errors.Is(err, ErrFormat) {
		t.Errorf("bad json: expected ErrFormat, got %v", err)
	}
}
