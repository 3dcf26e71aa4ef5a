package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wricardo/sinking-island/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	if configID == "" {
		configID = s.getConfigID(sess.Config.Name)
	}
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		Players:        sess.Engine.PlayerAmount(),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.State(),
		GameConfig:     sess.Config,
	}
}

// CreateSession creates a new game session. players overrides the config's
// player count when positive.
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string, players int) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			return nil, s.configLoadError(configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config, players)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session, configName), nil
}

// configLoadError lists the available configs when the requested one is missing
func (s *gameServiceImpl) configLoadError(configName string, err error) error {
	availableConfigs, listErr := s.configs.ListConfigs()
	if listErr == nil && len(availableConfigs) > 0 {
		var configIDs []string
		for _, cfg := range availableConfigs {
			configIDs = append(configIDs, cfg.ConfigID)
		}
		return fmt.Errorf("failed to load config '%s' (available: %v): %w", configName, configIDs, err)
	}
	return fmt.Errorf("failed to load config '%s': %w", configName, err)
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess, ""), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, ""))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// getSession looks the session up and marks it as accessed. Callers hold
// the write lock since the access time is written.
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// act runs one engine mutation and turns its outcome into an ActionResult.
// Rule violations become unsuccessful results; anything else is returned as
// an error.
func (s *gameServiceImpl) act(sessionID string, do func(*engine.GameEngine, *ActionResult) (string, error)) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	eng := sess.Engine
	before := len(eng.History())
	result := &ActionResult{}
	message, err := do(eng, result)
	switch {
	case err == nil:
		result.Success = true
		result.Message = message
	case errors.Is(err, engine.ErrIllegalMove), errors.Is(err, engine.ErrGame):
		result.Message = err.Error()
	default:
		return nil, err
	}

	result.GameState = eng.State()
	if history := eng.History(); len(history) > before {
		result.Events = history[before:]
	}
	if result.Success && result.GameState.Won {
		result.Message += "; " + winMessage(result.GameState)
	}
	return result, nil
}

func winMessage(state engine.GameState) string {
	if state.Winner == 0 {
		return "game over, nobody survived"
	}
	return fmt.Sprintf("player %d wins", state.Winner)
}

// rejected reports a rule violation found before the engine was called
func rejected(format string, args ...any) error {
	return fmt.Errorf("%w: %s", engine.ErrIllegalMove, fmt.Sprintf(format, args...))
}

// MovePawn moves one of the current player's pawns
func (s *gameServiceImpl) MovePawn(ctx context.Context, sessionID string, pawnID int, to engine.CubeCoordinate) (*ActionResult, error) {
	return s.act(sessionID, func(eng *engine.GameEngine, result *ActionResult) (string, error) {
		from, ok := eng.Board().PawnCoordinates(pawnID)
		if !ok {
			return "", rejected("pawn %d is not on the board", pawnID)
		}
		left, err := eng.MovePawn(from, to, pawnID)
		if err != nil {
			return "", err
		}
		result.ActionsLeft = &left
		return fmt.Sprintf("pawn %d moved %s -> %s, %d actions left", pawnID, from, to, left), nil
	})
}

// spinFor returns the pending spin when its section names entityType
func spinFor(eng *engine.GameEngine, entityType string) (engine.SpinResult, error) {
	spin, ok := eng.LastSpin()
	if !ok {
		return spin, rejected("spin the wheel first")
	}
	if spin.Section != entityType {
		return spin, rejected("the wheel picked %s, not %s", spin.Section, entityType)
	}
	return spin, nil
}

// MoveActor moves an actor by the token of the current spin. The spin's
// section must match the actor's type.
func (s *gameServiceImpl) MoveActor(ctx context.Context, sessionID string, actorID int, to engine.CubeCoordinate) (*ActionResult, error) {
	return s.act(sessionID, func(eng *engine.GameEngine, result *ActionResult) (string, error) {
		actor, ok := eng.Board().Actor(actorID)
		if !ok {
			return "", rejected("actor %d is not on the board", actorID)
		}
		from, _ := eng.Board().ActorCoordinates(actorID)
		spin, err := spinFor(eng, actor.ActorType())
		if err != nil {
			return "", err
		}
		if err := eng.MoveActor(from, to, actorID, spin.Moves); err != nil {
			return "", err
		}
		result.Spin = &spin
		return fmt.Sprintf("%s %d moved %s -> %s", actor.ActorType(), actorID, from, to), nil
	})
}

// MoveTransport moves a transport. In the movement phase the current
// player's actions are the budget; in the spinning phase the current spin's
// token is, and its section must match the transport's type.
func (s *gameServiceImpl) MoveTransport(ctx context.Context, sessionID string, transportID int, to engine.CubeCoordinate) (*ActionResult, error) {
	return s.act(sessionID, func(eng *engine.GameEngine, result *ActionResult) (string, error) {
		transport, ok := eng.Board().Transport(transportID)
		if !ok {
			return "", rejected("transport %d is not on the board", transportID)
		}
		from, _ := eng.Board().TransportCoordinates(transportID)

		var (
			left int
			err  error
		)
		if eng.CurrentGamePhase() == engine.Spinning {
			spin, spinErr := spinFor(eng, transport.TransportType())
			if spinErr != nil {
				return "", spinErr
			}
			left, err = eng.MoveTransportWithSpinner(from, to, transportID, spin.Moves)
			result.Spin = &spin
		} else {
			left, err = eng.MoveTransport(from, to, transportID)
		}
		if err != nil {
			result.Spin = nil
			return "", err
		}
		result.ActionsLeft = &left
		return fmt.Sprintf("%s %d moved %s -> %s", transport.TransportType(), transportID, from, to), nil
	})
}

// FlipTile sinks a land tile
func (s *gameServiceImpl) FlipTile(ctx context.Context, sessionID string, at engine.CubeCoordinate) (*ActionResult, error) {
	return s.act(sessionID, func(eng *engine.GameEngine, result *ActionResult) (string, error) {
		spawned, err := eng.FlipTile(at)
		if err != nil {
			return "", err
		}
		result.Spawned = spawned
		return fmt.Sprintf("%s sank and a %s appeared", at, spawned), nil
	})
}

// SpinWheel spins the wheel for the current player
func (s *gameServiceImpl) SpinWheel(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.act(sessionID, func(eng *engine.GameEngine, result *ActionResult) (string, error) {
		section, moves, err := eng.SpinWheel()
		if err != nil {
			return "", err
		}
		result.Spin = &engine.SpinResult{Section: section, Moves: moves}
		return fmt.Sprintf("the wheel landed on %s %s", section, moves), nil
	})
}

// Skip skips the rest of the current phase
func (s *gameServiceImpl) Skip(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.act(sessionID, func(eng *engine.GameEngine, result *ActionResult) (string, error) {
		phase := eng.CurrentGamePhase()
		if err := eng.Skip(); err != nil {
			return "", err
		}
		return fmt.Sprintf("skipped %s", phase), nil
	})
}

// GetGameState returns a snapshot of the session's game
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	snap := sess.Engine.Snapshot()
	return &snap, nil
}

// LegalPawnTargets lists the hexes a pawn may move to right now
func (s *gameServiceImpl) LegalPawnTargets(ctx context.Context, sessionID string, pawnID int) ([]engine.CubeCoordinate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	targets := sess.Engine.LegalPawnTargets(pawnID)
	if targets == nil {
		targets = []engine.CubeCoordinate{}
	}
	return targets, nil
}

// DescribeHex reports the terrain and occupants of one hex
func (s *gameServiceImpl) DescribeHex(ctx context.Context, sessionID string, at engine.CubeCoordinate) (*HexDescription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	board := sess.Engine.Board()
	h := board.Hex(at)
	if h == nil {
		return nil, fmt.Errorf("%w: no hex at %s", engine.ErrGame, at)
	}

	desc := &HexDescription{
		Hex: engine.HexView{
			Coordinates: at,
			PieceType:   h.PieceType(),
			Pawns:       h.PawnIDs(),
			Actors:      h.ActorIDs(),
			Transports:  h.TransportIDs(),
		},
	}
	for _, id := range h.PawnIDs() {
		if p, ok := board.Pawn(id); ok {
			desc.Pawns = append(desc.Pawns, p)
		}
	}
	for _, id := range h.ActorIDs() {
		if a, ok := board.Actor(id); ok {
			desc.Actors = append(desc.Actors, engine.ActorView{ID: id, Type: a.ActorType(), Mobile: a.Mobile(), Coordinates: at})
		}
	}
	for _, id := range h.TransportIDs() {
		if t, ok := board.Transport(id); ok {
			desc.Transports = append(desc.Transports, engine.TransportView{
				ID:          id,
				Type:        t.TransportType(),
				Coordinates: at,
				MaxCapacity: t.MaxCapacity(),
				Capacity:    t.Capacity(),
				Submersible: t.Submersible(),
				Riders:      t.Riders(),
			})
		}
	}
	if coral, dist, ok := engine.NearestCoral(board, at); ok {
		desc.NearestCoral = &coral
		desc.CoralDistance = dist
	}
	return desc, nil
}

// GetHistory returns paginated event history
func (s *gameServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.Engine.History()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	events := []engine.Event{}
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			events = append(events, history[i])
		}
	} else if start < total {
		events = append(events, history[start:end]...)
	}

	return &HistoryResponse{
		Events:      events,
		TotalEvents: total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}
