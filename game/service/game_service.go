package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/sinking-island/game/engine"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string, players int) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	MovePawn(ctx context.Context, sessionID string, pawnID int, to engine.CubeCoordinate) (*ActionResult, error)
	MoveActor(ctx context.Context, sessionID string, actorID int, to engine.CubeCoordinate) (*ActionResult, error)
	MoveTransport(ctx context.Context, sessionID string, transportID int, to engine.CubeCoordinate) (*ActionResult, error)
	FlipTile(ctx context.Context, sessionID string, at engine.CubeCoordinate) (*ActionResult, error)
	SpinWheel(ctx context.Context, sessionID string) (*ActionResult, error)
	Skip(ctx context.Context, sessionID string) (*ActionResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameSnapshot, error)
	LegalPawnTargets(ctx context.Context, sessionID string, pawnID int) ([]engine.CubeCoordinate, error)
	DescribeHex(ctx context.Context, sessionID string, at engine.CubeCoordinate) (*HexDescription, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig, players int) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
