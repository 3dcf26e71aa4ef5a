package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wricardo/sinking-island/game/engine"
)

func TestParsePieces(t *testing.T) {
	data := []byte(`{"Common": [{"name": "Peak", "layers": 1}, {"name": "Beach", "layers": 2}]}`)
	pieces, err := ParsePieces(data)
	if err != nil {
		t.Fatalf("ParsePieces failed: %v", err)
	}
	want := []engine.PieceLayer{{Name: engine.Peak, Layers: 1}, {Name: engine.Beach, Layers: 2}}
	if diff := cmp.Diff(want, pieces); diff != "" {
		t.Errorf("pieces mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{`not json`, `{"Other": []}`} {
		if _, err := ParsePieces([]byte(bad)); !errors.Is(err, engine.ErrFormat) {
			t.Errorf("ParsePieces(%q): expected ErrFormat, got %v", bad, err)
		}
	}
}

func TestParseWheelLayout(t *testing.T) {
	data := []byte(`[{"name": "dolphin", "chances": {"1": 3, "D": 1}}]`)
	sections, err := ParseWheelLayout(data)
	if err != nil {
		t.Fatalf("ParseWheelLayout failed: %v", err)
	}
	want := []engine.WheelSection{{Name: "dolphin", Chances: map[string]int{"1": 3, "D": 1}}}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseWheelLayout([]byte(`{"name": "x"}`)); !errors.Is(err, engine.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestReadLegacyFilesDistinguishesErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadPieces(filepath.Join(dir, "missing.json")); !errors.Is(err, engine.ErrIO) {
		t.Errorf("missing pieces: expected ErrIO, got %v", err)
	}
	if _, err := ReadWheelLayout(filepath.Join(dir, "missing.json")); !errors.Is(err, engine.ErrIO) {
		t.Errorf("missing layout: expected ErrIO, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if _, err := ReadPieces(bad); !errors.Is(err, engine.ErrFormat) {
		t.Errorf("bad pieces: expected ErrFormat, got %v", err)
	}
}

func TestFromLegacyFiles(t *testing.T) {
	dir := t.TempDir()
	pieces := filepath.Join(dir, "pieces.json")
	layout := filepath.Join(dir, "layout.json")
	os.WriteFile(pieces, []byte(`{"Common": [{"name": "Forest", "layers": 1}, {"name": "Beach", "layers": 1}, {"name": "Water", "layers": 1}]}`), 0644)
	os.WriteFile(layout, []byte(`[{"name": "shark", "chances": {"1": 1}}]`), 0644)

	config, err := FromLegacyFiles("imported", pieces, layout, 3)
	if err != nil {
		t.Fatalf("FromLegacyFiles failed: %v", err)
	}
	if config.Players != 3 || len(config.Pieces) != 3 || len(config.Spinner) != 1 {
		t.Errorf("unexpected config %+v", config)
	}

	os.WriteFile(layout, []byte(`[{"name": "shark", "chances": {"9": 1}}]`), 0644)
	if _, err := FromLegacyFiles("imported", pieces, layout, 3); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
