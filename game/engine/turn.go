package engine

import "fmt"

// Skip ends the current phase early. Skipping movement goes to sinking;
// skipping the spinner move passes the turn.
func (e *GameEngine) Skip() error {
	if e.state.Won {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	switch e.state.Phase {
	case Movement:
		e.record(Event{Kind: EventSkipped, Detail: Movement.String()})
		e.state.Phase = Sinking
	case Spinning:
		e.record(Event{Kind: EventSkipped, Detail: Spinning.String()})
		e.EndTurn()
	default:
		return fmt.Errorf("%w: a tile must be flipped before the turn can continue", ErrIllegalMove)
	}
	return nil
}

// EndTurn passes the turn to the next player that still has pawns on the
// board, restores their actions and returns to the movement phase.
func (e *GameEngine) EndTurn() {
	if len(e.players) == 0 || e.state.Won {
		return
	}
	alive := e.pawnsByPlayer()
	start := 0
	for i, p := range e.players {
		if p.PlayerID() == e.state.CurrentPlayer {
			start = i
			break
		}
	}

	next := e.players[(start+1)%len(e.players)]
	if len(alive) > 0 {
		for step := 1; step <= len(e.players); step++ {
			candidate := e.players[(start+step)%len(e.players)]
			if alive[candidate.PlayerID()] > 0 {
				next = candidate
				break
			}
		}
	}

	e.state.CurrentPlayer = next.PlayerID()
	e.state.Phase = Movement
	e.lastSpin = nil
	next.SetActionsLeft(MaxActionsPerTurn)
	e.record(Event{Kind: EventTurnPassed, PlayerID: next.PlayerID()})
}

// resolveActors lets every actor at c act in id order
func (e *GameEngine) resolveActors(c CubeCoordinate) Casualties {
	var result Casualties
	h := e.board.Hex(c)
	if h == nil {
		return result
	}
	for _, id := range h.ActorIDs() {
		if a, ok := e.board.Actor(id); ok {
			result.merge(a.DoAction(e.board))
		}
	}
	e.applyCasualties(result)
	return result
}

// applyCasualties updates player pawn counts and ends the game when at most
// one player still has pawns
func (e *GameEngine) applyCasualties(cas Casualties) {
	if len(cas.Pawns) == 0 {
		return
	}
	for _, p := range cas.Pawns {
		if player, ok := e.Player(p.PlayerID); ok {
			player.RemovePawn()
		}
	}
	if len(e.players) < 2 || e.state.Won {
		return
	}
	alive := e.pawnsByPlayer()
	switch len(alive) {
	case 0:
		e.declareWinner(0)
	case 1:
		for id := range alive {
			e.declareWinner(id)
		}
	}
}

// declareWinner ends the game. A winner of 0 means no pawn survived.
func (e *GameEngine) declareWinner(playerID int) {
	e.state.setWinner(playerID)
	e.record(Event{Kind: EventGameWon, PlayerID: playerID})
}

func (e *GameEngine) pawnsByPlayer() map[int]int {
	counts := make(map[int]int)
	for _, p := range e.board.Pawns() {
		counts[p.PlayerID]++
	}
	return counts
}

func casualtiesPtr(c Casualties) *Casualties {
	if c.Empty() {
		return nil
	}
	return &c
}
