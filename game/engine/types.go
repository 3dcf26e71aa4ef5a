package engine

import (
	"fmt"
	"strings"
)

// PieceType is the terrain label of a hex
type PieceType string

const (
	Water    PieceType = "Water"
	Coral    PieceType = "Coral"
	Peak     PieceType = "Peak"
	Mountain PieceType = "Mountain"
	Forest   PieceType = "Forest"
	Beach    PieceType = "Beach"
)

// Sinkable reports whether a hex of this type may be flipped. Every type
// other than Water and Coral is sinkable.
func (t PieceType) Sinkable() bool {
	return t != Water && t != Coral && t != ""
}

const (
	// Rules
	MaxPawnsPerHex    = 3
	MaxActorsPerHex   = 3
	MaxActionsPerTurn = 3
	InvalidMove       = -1
	DiveMove          = "D"

	// Validation constants
	MinPlayers            = 2
	MaxPlayers            = 6
	MaxPawnsPerPlayer     = MaxPawnsPerHex
	DefaultGoalSize       = 2
	DefaultPawnsPerPlayer = 3
)

// GamePhase is one step of a player's turn
type GamePhase int

const (
	Movement GamePhase = iota + 1
	Sinking
	Spinning
)

func (p GamePhase) String() string {
	switch p {
	case Movement:
		return "movement"
	case Sinking:
		return "sinking"
	case Spinning:
		return "spinning"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MarshalText encodes the phase by name. The zero phase encodes as an empty
// string.
func (p GamePhase) MarshalText() ([]byte, error) {
	switch p {
	case 0:
		return []byte{}, nil
	case Movement, Sinking, Spinning:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("%w: unknown game phase %d", ErrFormat, int(p))
}

// UnmarshalText decodes a phase name
func (p *GamePhase) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*p = 0
	case "movement":
		*p = Movement
	case "sinking":
		*p = Sinking
	case "spinning":
		*p = Spinning
	default:
		return fmt.Errorf("%w: unknown game phase %q", ErrFormat, text)
	}
	return nil
}

// PieceLayer is one entry of an island config: how many rings of a terrain
// type to build.
type PieceLayer struct {
	Name   PieceType `json:"name" yaml:"name"`
	Layers int       `json:"layers" yaml:"layers"`
}

// WheelSection is one section of the spinner with the weight of each
// movement token.
type WheelSection struct {
	Name    string         `json:"name" yaml:"name"`
	Chances map[string]int `json:"chances" yaml:"chances"`
}

// GameConfig describes an island and its spinner
type GameConfig struct {
	Name           string         `json:"name" yaml:"name"`
	Description    string         `json:"description" yaml:"description"`
	Players        int            `json:"players" yaml:"players"`
	PawnsPerPlayer int            `json:"pawns_per_player" yaml:"pawns_per_player"`
	GoalSize       int            `json:"goal_size,omitempty" yaml:"goal_size,omitempty"`
	Seed           int64          `json:"seed,omitempty" yaml:"seed,omitempty"`
	Pieces         []PieceLayer   `json:"pieces" yaml:"pieces"`
	Spinner        []WheelSection `json:"spinner" yaml:"spinner"`
}

// PieceCount is one entry of the sinking ledger
type PieceCount struct {
	Type  PieceType `json:"type"`
	Count int       `json:"count"`
}

// EventKind names an entry of the game history
type EventKind string

const (
	EventPawnMoved      EventKind = "pawn_moved"
	EventActorMoved     EventKind = "actor_moved"
	EventTransportMoved EventKind = "transport_moved"
	EventTileFlipped    EventKind = "tile_flipped"
	EventWheelSpun      EventKind = "wheel_spun"
	EventTurnPassed     EventKind = "turn_passed"
	EventSkipped        EventKind = "skipped"
	EventGameWon        EventKind = "game_won"
)

// Event records one successful engine mutation
type Event struct {
	Seq        int             `json:"seq"`
	Kind       EventKind       `json:"kind"`
	PlayerID   int             `json:"player_id"`
	From       *CubeCoordinate `json:"from,omitempty"`
	To         *CubeCoordinate `json:"to,omitempty"`
	EntityID   int             `json:"entity_id,omitempty"`
	Detail     string          `json:"detail,omitempty"`
	Casualties *Casualties     `json:"casualties,omitempty"`
}
