package main

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wricardo/sinking-island/game/engine"
)

func TestRingTypes(t *testing.T) {
	got := ringTypes([]engine.PieceLayer{
		{Name: engine.Mountain, Layers: 1},
		{Name: engine.Beach, Layers: 2},
		{Name: engine.Coral, Layers: 1},
	})
	want := []engine.PieceType{engine.Mountain, engine.Beach, engine.Beach, engine.Coral}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rings mismatch (-want +got):\n%s", diff)
	}
}

func TestTurnsFor(t *testing.T) {
	tests := []struct{ distance, want int }{
		{0, 0}, {1, 1}, {3, 1}, {4, 2}, {7, 3},
	}
	for _, tt := range tests {
		if got := turnsFor(tt.distance); got != tt.want {
			t.Errorf("turnsFor(%d) = %d, want %d", tt.distance, got, tt.want)
		}
	}
}

func TestSpinnerOdds(t *testing.T) {
	odds := spinnerOdds([]engine.WheelSection{
		{Name: engine.SharkType, Chances: map[string]int{"1": 2, "2": 1}},
		{Name: engine.KrakenType, Chances: map[string]int{"1": 1, engine.DiveMove: 1}},
	})

	want := []Odds{
		{Section: engine.SharkType, Token: "1", Percent: 100.0 / 3},
		{Section: engine.SharkType, Token: "2", Percent: 100.0 / 6},
		{Section: engine.KrakenType, Token: "1", Percent: 25},
		{Section: engine.KrakenType, Token: engine.DiveMove, Percent: 25},
	}
	approx := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })
	if diff := cmp.Diff(want, odds, approx); diff != "" {
		t.Errorf("odds mismatch (-want +got):\n%s", diff)
	}

	sum := 0.0
	for _, o := range odds {
		sum += o.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("odds sum to %.3f%%, want 100%%", sum)
	}
}

func TestAnalyzeConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzeConfig(&buf, engine.DefaultGameConfig(3)); err != nil {
		t.Fatalf("analyzeConfig: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Players: 3, pawns each: 3",
		"Hexes: 169, sinkable rings: 5",
		"  0: Peak",
		"  7: Coral",
		"boat 1 at (5,-5,0)",
		"coral hexes: 18",
		"player 1 at (-1,1,0): nearest coral",
		"Spinner odds:",
		"dive",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "⚠️") {
		t.Errorf("classic island should raise no warnings:\n%s", out)
	}
}

func TestAnalyzeConfig_Warnings(t *testing.T) {
	cfg := &engine.GameConfig{
		Name:           "dry",
		Players:        2,
		PawnsPerPlayer: 1,
		Pieces: []engine.PieceLayer{
			{Name: engine.Mountain, Layers: 1},
			{Name: engine.Forest, Layers: 1},
			{Name: engine.Beach, Layers: 1},
		},
		Spinner: engine.DefaultWheelSections(),
	}

	var buf bytes.Buffer
	if err := analyzeConfig(&buf, cfg); err != nil {
		t.Fatalf("analyzeConfig: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"only 0 boats for 2 players", "no coral on the board"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr bool
	}{
		{
			name: "every config",
			args: []string{"analyze", "--config-dir", "../../configs"},
			want: []string{"=== Analyzing classic ===", "=== Analyzing small ===", "Sinking ledger"},
		},
		{
			name:    "odds only",
			args:    []string{"analyze", "-d", "../../configs", "--odds-only", "small"},
			want:    []string{"=== Analyzing small ===", "Spinner odds:", "dolphin"},
			notWant: []string{"classic", "Sinking ledger"},
		},
		{
			name:    "unknown config",
			args:    []string{"analyze", "-d", "../../configs", "atlantis"},
			wantErr: true,
		},
		{
			name:    "missing directory",
			args:    []string{"analyze", "-d", "../../no-such-dir"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := newCommand()
			cmd.Writer = &buf
			cmd.ErrWriter = &buf

			err := cmd.Run(context.Background(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, out)
				}
			}
		})
	}
}
