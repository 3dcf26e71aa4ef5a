package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	if config.Players < MinPlayers || config.Players > MaxPlayers {
		return fmt.Errorf("config validation: players must be between %d and %d, got %d", MinPlayers, MaxPlayers, config.Players)
	}
	// Every pawn of a player starts on the same hex
	if config.PawnsPerPlayer < 1 || config.PawnsPerPlayer > MaxPawnsPerPlayer {
		return fmt.Errorf("config validation: pawns_per_player must be between 1 and %d, got %d", MaxPawnsPerPlayer, config.PawnsPerPlayer)
	}
	if config.GoalSize < 0 {
		return fmt.Errorf("config validation: goal_size cannot be negative, got %d", config.GoalSize)
	}

	// Pieces
	sinkable, rings := 0, 0
	for i, piece := range config.Pieces {
		if piece.Name == "" {
			return fmt.Errorf("config validation: piece %d has no name", i+1)
		}
		if piece.Layers < 1 {
			return fmt.Errorf("config validation: piece %q must have at least one layer, got %d", piece.Name, piece.Layers)
		}
		if piece.Name.Sinkable() {
			sinkable++
		}
		rings += piece.Layers
	}
	if sinkable == 0 {
		return fmt.Errorf("config validation: at least one sinkable piece layer is required")
	}
	if rings < 2 {
		return fmt.Errorf("config validation: island needs at least 2 rings for the starting hexes, got %d", rings)
	}
	if !config.Pieces[0].Name.Sinkable() {
		return fmt.Errorf("config validation: the centre piece %q must be sinkable", config.Pieces[0].Name)
	}

	// Spinner
	if len(config.Spinner) == 0 {
		return fmt.Errorf("config validation: at least one spinner section is required")
	}
	for _, section := range config.Spinner {
		if section.Name == "" {
			return fmt.Errorf("config validation: spinner section has no name")
		}
		if len(section.Chances) == 0 {
			return fmt.Errorf("config validation: spinner section %q has no chances", section.Name)
		}
		for token, weight := range section.Chances {
			switch token {
			case "1", "2", "3", DiveMove:
			default:
				return fmt.Errorf("config validation: spinner section %q has invalid token %q", section.Name, token)
			}
			if weight < 1 {
				return fmt.Errorf("config validation: spinner section %q token %q must have a positive weight, got %d", section.Name, token, weight)
			}
		}
	}

	return nil
}

// DefaultGameConfig returns the classic island for the given number of players
func DefaultGameConfig(players int) *GameConfig {
	return &GameConfig{
		Name:           "classic",
		Description:    "Classic island: peak, mountains, forest and beaches ringed by sea and coral",
		Players:        players,
		PawnsPerPlayer: DefaultPawnsPerPlayer,
		GoalSize:       DefaultGoalSize,
		Pieces: []PieceLayer{
			{Name: Peak, Layers: 1},
			{Name: Mountain, Layers: 1},
			{Name: Forest, Layers: 1},
			{Name: Beach, Layers: 2},
			{Name: Water, Layers: 2},
			{Name: Coral, Layers: 1},
		},
		Spinner: DefaultWheelSections(),
	}
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, configPath, err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, configPath, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
