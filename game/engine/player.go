package engine

// Player is a participant referenced by the engine. Callers may supply their
// own implementation.
type Player interface {
	PlayerID() int
	ActionsLeft() int
	SetActionsLeft(n int)
	PawnCount() int
	// RemovePawn records that one of the player's pawns left the board
	RemovePawn()
	StartingCoordinates() CubeCoordinate
}

var startingCoordinates = map[int]CubeCoordinate{
	1: {X: -1, Y: 1, Z: 0},
	2: {X: 1, Y: -1, Z: 0},
	3: {X: 0, Y: -1, Z: 1},
	4: {X: 0, Y: 1, Z: -1},
	5: {X: 1, Y: 0, Z: -1},
	6: {X: -1, Y: 0, Z: 1},
}

// StartingCoordinatesFor returns the start hex used for a player id
func StartingCoordinatesFor(playerID int) CubeCoordinate {
	return startingCoordinates[playerID]
}

// BasicPlayer is the default Player
type BasicPlayer struct {
	ID      int
	Actions int
	Pawns   int
	Start   CubeCoordinate
}

// NewBasicPlayer creates a player with a full set of actions
func NewBasicPlayer(id, pawns int) *BasicPlayer {
	return &BasicPlayer{
		ID:      id,
		Actions: MaxActionsPerTurn,
		Pawns:   pawns,
		Start:   StartingCoordinatesFor(id),
	}
}

// NewPlayers creates players 1..n with the given number of pawns each
func NewPlayers(n, pawns int) []Player {
	players := make([]Player, 0, n)
	for id := 1; id <= n; id++ {
		players = append(players, NewBasicPlayer(id, pawns))
	}
	return players
}

func (p *BasicPlayer) PlayerID() int                       { return p.ID }
func (p *BasicPlayer) ActionsLeft() int                    { return p.Actions }
func (p *BasicPlayer) SetActionsLeft(n int)                { p.Actions = n }
func (p *BasicPlayer) PawnCount() int                      { return p.Pawns }
func (p *BasicPlayer) StartingCoordinates() CubeCoordinate { return p.Start }

func (p *BasicPlayer) RemovePawn() {
	if p.Pawns > 0 {
		p.Pawns--
	}
}
