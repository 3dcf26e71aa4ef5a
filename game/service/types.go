package service

import (
	"time"

	"github.com/wricardo/sinking-island/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	Players        int                `json:"players"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      engine.GameState   `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// ActionResult is the outcome of one game action. A rejected action is a
// result with Success false and the reason in Message, not an error.
type ActionResult struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	ActionsLeft *int               `json:"actions_left,omitempty"`
	Spawned     string             `json:"spawned,omitempty"`
	Spin        *engine.SpinResult `json:"spin,omitempty"`
	GameState   engine.GameState   `json:"game_state"`
	Events      []engine.Event     `json:"events,omitempty"`
}

// HexDescription is everything known about one hex of a session's board
type HexDescription struct {
	Hex           engine.HexView         `json:"hex"`
	Pawns         []engine.Pawn          `json:"pawns,omitempty"`
	Actors        []engine.ActorView     `json:"actors,omitempty"`
	Transports    []engine.TransportView `json:"transports,omitempty"`
	NearestCoral  *engine.CubeCoordinate `json:"nearest_coral,omitempty"`
	CoralDistance int                    `json:"coral_distance,omitempty"`
}

// HistoryOptions configures event history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated event history
type HistoryResponse struct {
	Events      []engine.Event `json:"events"`
	TotalEvents int            `json:"total_events"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename        string   `json:"filename"`
	ConfigID        string   `json:"config_id"` // The identifier to use for session creation
	Name            string   `json:"name"`      // Display name
	Description     string   `json:"description"`
	Players         int      `json:"players"`
	PawnsPerPlayer  int      `json:"pawns_per_player"`
	Rings           int      `json:"rings"`
	SpinnerSections []string `json:"spinner_sections"`
}
