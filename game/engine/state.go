package engine

// GameState holds the turn bookkeeping. Only the engine mutates it.
type GameState struct {
	Phase         GamePhase `json:"phase"`
	CurrentPlayer int       `json:"current_player"`
	Won           bool      `json:"won"`
	Winner        int       `json:"winner,omitempty"`
}

// NewGameState returns the state at the start of a game: player 1 to move
func NewGameState() *GameState {
	return &GameState{Phase: Movement, CurrentPlayer: 1}
}

func (s *GameState) setWinner(playerID int) {
	s.Won = true
	s.Winner = playerID
}
