package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wricardo/sinking-island/game/engine"
)

// piecesDocument is the shape of a standalone pieces file:
// {"Common": [{"name": "Peak", "layers": 1}, ...]}
type piecesDocument struct {
	Common []engine.PieceLayer `json:"Common"`
}

// ParsePieces decodes a standalone pieces document into ordered layers
func ParsePieces(data []byte) ([]engine.PieceLayer, error) {
	var doc piecesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: pieces: %v", engine.ErrFormat, err)
	}
	if doc.Common == nil {
		return nil, fmt.Errorf("%w: pieces: missing \"Common\" list", engine.ErrFormat)
	}
	return doc.Common, nil
}

// ReadPieces reads and decodes a pieces file
func ReadPieces(path string) ([]engine.PieceLayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", engine.ErrIO, path, err)
	}
	return ParsePieces(data)
}

// ParseWheelLayout decodes a spinner layout document:
// [{"name": "shark", "chances": {"1": 2, "2": 1}}, ...]
func ParseWheelLayout(data []byte) ([]engine.WheelSection, error) {
	var sections []engine.WheelSection
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("%w: layout: %v", engine.ErrFormat, err)
	}
	return sections, nil
}

// ReadWheelLayout reads and decodes a spinner layout file
func ReadWheelLayout(path string) ([]engine.WheelSection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", engine.ErrIO, path, err)
	}
	return ParseWheelLayout(data)
}

// FromLegacyFiles assembles a game config from a pieces file and a layout
// file, using defaults for everything else
func FromLegacyFiles(name, piecesPath, layoutPath string, players int) (*engine.GameConfig, error) {
	pieces, err := ReadPieces(piecesPath)
	if err != nil {
		return nil, err
	}
	sections, err := ReadWheelLayout(layoutPath)
	if err != nil {
		return nil, err
	}

	config := engine.DefaultGameConfig(players)
	config.Name = name
	config.Description = "Imported from " + piecesPath + " and " + layoutPath
	config.Pieces = pieces
	config.Spinner = sections
	if err := engine.ValidateGameConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return config, nil
}
