package engine

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWheelLayoutQueries(t *testing.T) {
	w := NewWheelLayout(DefaultWheelSections())

	if diff := cmp.Diff([]string{DolphinType, SharkType, KrakenType, SeamunsterType}, w.Sections()); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
	want := []Chance{{Token: "1", Weight: 2}, {Token: "2", Weight: 1}, {Token: DiveMove, Weight: 1}}
	if diff := cmp.Diff(want, w.ChancesFor(KrakenType)); diff != "" {
		t.Errorf("kraken chances mismatch (-want +got):\n%s", diff)
	}
	if got := w.ChancesFor("unicorn"); len(got) != 0 {
		t.Errorf("unknown section should have no chances, got %v", got)
	}
	if got := w.SpinnerLayout()[SharkType]["2"]; got != 2 {
		t.Errorf("SpinnerLayout shark/2 = %d, want 2", got)
	}
}

func TestSpinHonoursWeights(t *testing.T) {
	w := NewWheelLayout([]WheelSection{{Name: SharkType, Chances: map[string]int{"1": 1, "3": 9}}})
	rng := rand.New(rand.NewSource(7))

	counts := make(map[string]int)
	for range 2000 {
		result, err := w.spin(rng)
		if err != nil {
			t.Fatalf("spin failed: %v", err)
		}
		if result.Section != SharkType {
			t.Fatalf("unexpected section %q", result.Section)
		}
		counts[result.Moves]++
	}
	if counts["1"] == 0 || counts["3"] < 4*counts["1"] {
		t.Errorf("weights not honoured: %v", counts)
	}
}

func TestSpinEmptyLayout(t *testing.T) {
	w := NewWheelLayout(nil)
	if _, err := w.spin(rand.New(rand.NewSource(1))); !errors.Is(err, ErrGame) {
		t.Errorf("expected ErrGame, got %v", err)
	}
}

func TestSpinWheelPhases(t *testing.T) {
	e := layeredEngine(t)

	if _, _, err := e.SpinWheel(); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("spinning during movement should be illegal, got %v", err)
	}
	enterSinking(t, e)

	if _, err := e.FlipTile(east); err != nil {
		t.Fatalf("FlipTile failed: %v", err)
	}
	section, moves, err := e.SpinWheel()
	if err != nil {
		t.Fatalf("SpinWheel failed: %v", err)
	}
	if !slices.Contains(e.wheel.Sections(), section) {
		t.Errorf("section %q not in layout", section)
	}
	if _, ok := e.GetSpinnerLayout()[section][moves]; !ok {
		t.Errorf("token %q not configured for %q", moves, section)
	}
	if spin, ok := e.LastSpin(); !ok || spin.Section != section || spin.Moves != moves {
		t.Errorf("LastSpin = %+v, %v", spin, ok)
	}
	if _, _, err := e.SpinWheel(); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("second spin should be illegal, got %v", err)
	}
}

func TestSpinWheelWhenNothingLeftToFlip(t *testing.T) {
	e := newTestEngine(t)
	e.AddHexToBoard(origin, Water)
	e.state.Phase = Sinking

	if _, _, err := e.SpinWheel(); err != nil {
		t.Fatalf("SpinWheel with an empty ledger failed: %v", err)
	}
	if e.CurrentGamePhase() != Spinning {
		t.Errorf("phase = %s, want spinning", e.CurrentGamePhase())
	}
}

func TestSpinWheelIsDeterministicForSeed(t *testing.T) {
	spin := func() (string, string) {
		e := layeredEngine(t, WithSeed(99))
		enterSinking(t, e)
		if _, err := e.FlipTile(east); err != nil {
			t.Fatalf("FlipTile failed: %v", err)
		}
		section, moves, err := e.SpinWheel()
		if err != nil {
			t.Fatalf("SpinWheel failed: %v", err)
		}
		return section, moves
	}

	s1, m1 := spin()
	s2, m2 := spin()
	if s1 != s2 || m1 != m2 {
		t.Errorf("same seed gave (%s,%s) and (%s,%s)", s1, m1, s2, m2)
	}
}
