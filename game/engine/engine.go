package engine

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"slices"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state
	Board() *Board
	State() GameState
	Players() []Player
	CurrentPlayer() int
	PlayerAmount() int
	CurrentGamePhase() GamePhase
	GetCurrentPlayer() Player
	IsGameOver() bool

	// Island bookkeeping
	AddHexToBoard(coord CubeCoordinate, pieceType PieceType) [6]CubeCoordinate
	IslandPieces() []PieceCount
	IslandRadius() int

	// Movement
	CheckPawnMovement(origin, target CubeCoordinate, pawnID int) int
	MovePawn(origin, target CubeCoordinate, pawnID int) (int, error)
	CheckActorMovement(origin, target CubeCoordinate, actorID int, moves string) bool
	MoveActor(origin, target CubeCoordinate, actorID int, moves string) error
	CheckTransportMovement(origin, target CubeCoordinate, transportID int, moves string) int
	MoveTransport(origin, target CubeCoordinate, transportID int) (int, error)
	MoveTransportWithSpinner(origin, target CubeCoordinate, transportID int, moves string) (int, error)
	LegalPawnTargets(pawnID int) []CubeCoordinate

	// Sinking and spinning
	FlipTile(coord CubeCoordinate) (string, error)
	SpinWheel() (string, string, error)
	GetSpinnerLayout() SpinnerLayout
	LastSpin() (SpinResult, bool)

	// Turn handling
	Skip() error
	EndTurn()

	// Views
	Snapshot() GameSnapshot
	History() []Event
}

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; callers serialise access.
type GameEngine struct {
	board      *Board
	state      *GameState
	players    []Player
	actors     *ActorFactory
	transports *TransportFactory
	wheel      *WheelLayout
	rng        *rand.Rand
	logger     *log.Logger

	islandPieces []PieceCount
	islandRadius int
	goalSize     int

	lastSpin *SpinResult
	history  []Event
}

// Option configures a GameEngine
type Option func(*GameEngine)

// WithRand sets the random source used for flips and spins
func WithRand(rng *rand.Rand) Option {
	return func(e *GameEngine) { e.rng = rng }
}

// WithSeed seeds the random source
func WithSeed(seed int64) Option {
	return func(e *GameEngine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithActorFactory replaces the default actor vocabulary
func WithActorFactory(f *ActorFactory) Option {
	return func(e *GameEngine) { e.actors = f }
}

// WithTransportFactory replaces the default transport vocabulary
func WithTransportFactory(f *TransportFactory) Option {
	return func(e *GameEngine) { e.transports = f }
}

// WithWheelLayout replaces the spinner layout
func WithWheelLayout(w *WheelLayout) Option {
	return func(e *GameEngine) { e.wheel = w }
}

// WithLogger sets the logger for setup diagnostics
func WithLogger(l *log.Logger) Option {
	return func(e *GameEngine) { e.logger = l }
}

func newGameEngine(players []Player, opts []Option) *GameEngine {
	e := &GameEngine{
		board:    NewBoard(),
		state:    NewGameState(),
		players:  slices.Clone(players),
		goalSize: DefaultGoalSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.actors == nil {
		e.actors = DefaultActorFactory()
	}
	if e.transports == nil {
		e.transports = DefaultTransportFactory()
	}
	if e.wheel == nil {
		e.wheel = NewWheelLayout(DefaultWheelSections())
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard, "", 0)
	}
	return e
}

// NewBareEngine creates an engine over an empty board with no sinking
// ledger. Hexes are added with AddHexToBoard.
func NewBareEngine(players []Player, opts ...Option) *GameEngine {
	return newGameEngine(players, opts)
}

// NewEngine builds the island described by config, places each player's
// pawns on their starting hex and seeds boats along the coast. When players
// is nil, config.Players basic players are created.
func NewEngine(config *GameConfig, players []Player, opts ...Option) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if players == nil {
		players = NewPlayers(config.Players, config.PawnsPerPlayer)
	}
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d to %d players, got %d", ErrGame, MinPlayers, MaxPlayers, len(players))
	}

	if config.Seed != 0 {
		opts = append([]Option{WithSeed(config.Seed)}, opts...)
	}
	if len(config.Spinner) > 0 {
		opts = append([]Option{WithWheelLayout(NewWheelLayout(config.Spinner))}, opts...)
	}
	e := newGameEngine(players, opts)
	if config.GoalSize > 0 {
		e.goalSize = config.GoalSize
	}

	e.initializeBoard(config.Pieces)
	if err := e.initializePawns(config.PawnsPerPlayer); err != nil {
		return nil, err
	}
	if err := e.initializeBoats(); err != nil {
		e.logger.Printf("Boat setup skipped: %v", err)
	}
	return e, nil
}

// Board returns the board. Callers must not mutate it directly.
func (e *GameEngine) Board() *Board {
	return e.board
}

// State returns a copy of the game state
func (e *GameEngine) State() GameState {
	return *e.state
}

// Players returns the players in turn order
func (e *GameEngine) Players() []Player {
	return slices.Clone(e.players)
}

// Player returns the player with the given id
func (e *GameEngine) Player(id int) (Player, bool) {
	for _, p := range e.players {
		if p.PlayerID() == id {
			return p, true
		}
	}
	return nil, false
}

// CurrentPlayer returns the id of the player in turn
func (e *GameEngine) CurrentPlayer() int {
	return e.state.CurrentPlayer
}

// PlayerAmount returns the number of players
func (e *GameEngine) PlayerAmount() int {
	return len(e.players)
}

// CurrentGamePhase returns the phase of the current turn
func (e *GameEngine) CurrentGamePhase() GamePhase {
	return e.state.Phase
}

// GetCurrentPlayer returns the player in turn, or nil if no player has the
// current id
func (e *GameEngine) GetCurrentPlayer() Player {
	p, _ := e.Player(e.state.CurrentPlayer)
	return p
}

// IsGameOver reports whether someone has won
func (e *GameEngine) IsGameOver() bool {
	return e.state.Won
}

// IslandPieces returns a copy of the sinking ledger. The last entry is the
// only terrain that may currently be flipped.
func (e *GameEngine) IslandPieces() []PieceCount {
	return slices.Clone(e.islandPieces)
}

// IslandRadius returns the number of sinkable layers the island was built with
func (e *GameEngine) IslandRadius() int {
	return e.islandRadius
}

// GetSpinnerLayout returns the spinner layout for display
func (e *GameEngine) GetSpinnerLayout() SpinnerLayout {
	return e.wheel.SpinnerLayout()
}

// LastSpin returns the spin of the current turn, if the wheel was spun
func (e *GameEngine) LastSpin() (SpinResult, bool) {
	if e.lastSpin == nil {
		return SpinResult{}, false
	}
	return *e.lastSpin, true
}

// History returns every recorded event in order
func (e *GameEngine) History() []Event {
	return slices.Clone(e.history)
}

// AddHexToBoard creates a hex at coord, replacing any existing one, and
// updates the sinking ledger. It returns the six neighbour coordinates of
// the new hex.
func (e *GameEngine) AddHexToBoard(coord CubeCoordinate, pieceType PieceType) [6]CubeCoordinate {
	idx := slices.IndexFunc(e.islandPieces, func(pc PieceCount) bool { return pc.Type == pieceType })

	switch {
	case e.board.Hex(coord) != nil:
		if idx >= 0 {
			e.islandPieces[idx].Count = max(e.islandPieces[idx].Count-1, 0)
		}
	case idx >= 0:
		e.islandPieces[idx].Count++
	case pieceType.Sinkable():
		e.islandPieces = append(e.islandPieces, PieceCount{Type: pieceType, Count: 1})
	}

	h := NewHex(coord, pieceType)
	e.board.AddHex(h)
	return h.NeighbourCoordinates()
}

func (e *GameEngine) record(ev Event) {
	ev.Seq = len(e.history) + 1
	if ev.PlayerID == 0 && ev.Kind != EventGameWon {
		ev.PlayerID = e.state.CurrentPlayer
	}
	e.history = append(e.history, ev)
}

func coordPtr(c CubeCoordinate) *CubeCoordinate {
	return &c
}
