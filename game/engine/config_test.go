package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr bool
	}{
		{"default", func(c *GameConfig) {}, false},
		{"missing name", func(c *GameConfig) { c.Name = "" }, true},
		{"too few players", func(c *GameConfig) { c.Players = 1 }, true},
		{"too many players", func(c *GameConfig) { c.Players = 7 }, true},
		{"no pawns", func(c *GameConfig) { c.PawnsPerPlayer = 0 }, true},
		{"too many pawns", func(c *GameConfig) { c.PawnsPerPlayer = MaxPawnsPerHex + 1 }, true},
		{"full start hex", func(c *GameConfig) { c.PawnsPerPlayer = MaxPawnsPerHex }, false},
		{"negative goal size", func(c *GameConfig) { c.GoalSize = -1 }, true},
		{"zero layers", func(c *GameConfig) { c.Pieces[1].Layers = 0 }, true},
		{"no sinkable pieces", func(c *GameConfig) {
			c.Pieces = []PieceLayer{{Name: Water, Layers: 2}, {Name: Coral, Layers: 1}}
		}, true},
		{"single ring", func(c *GameConfig) { c.Pieces = []PieceLayer{{Name: Peak, Layers: 1}} }, true},
		{"water centre", func(c *GameConfig) {
			c.Pieces = append([]PieceLayer{{Name: Water, Layers: 1}}, c.Pieces...)
		}, true},
		{"custom terrain", func(c *GameConfig) { c.Pieces[2].Name = "Jungle" }, false},
		{"no spinner", func(c *GameConfig) { c.Spinner = nil }, true},
		{"bad token", func(c *GameConfig) { c.Spinner[0].Chances["4"] = 1 }, true},
		{"zero weight", func(c *GameConfig) { c.Spinner[0].Chances["1"] = 0 }, true},
		{"empty section", func(c *GameConfig) { c.Spinner[0].Chances = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultGameConfig(2)
			tt.mutate(config)
			err := ValidateGameConfig(config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGameConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateGameConfigNil(t *testing.T) {
	if err := ValidateGameConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestGamePhaseText(t *testing.T) {
	tests := []struct {
		phase GamePhase
		text  string
	}{
		{0, ""},
		{Movement, "movement"},
		{Sinking, "sinking"},
		{Spinning, "spinning"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			text, err := tt.phase.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText failed: %v", err)
			}
			if string(text) != tt.text {
				t.Errorf("MarshalText = %q, want %q", text, tt.text)
			}
			decoded := Spinning + 1
			if err := decoded.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
			}
			if decoded != tt.phase {
				t.Errorf("round trip of %s gave %s", tt.phase, decoded)
			}
		})
	}

	var p GamePhase
	if err := p.UnmarshalText([]byte("dancing")); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for unknown phase, got %v", err)
	}
	if _, err := GamePhase(7).MarshalText(); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for out of range phase, got %v", err)
	}
}

func TestGameStateZeroValueJSON(t *testing.T) {
	data, err := json.Marshal(GameState{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded GameState
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal(%s) failed: %v", data, err)
	}
	if diff := cmp.Diff(GameState{}, decoded); diff != "" {
		t.Errorf("zero state round trip mismatch (-want +got):\n%s", diff)
	}
}
