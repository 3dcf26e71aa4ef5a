package engine

import "fmt"

// FlipTile sinks the land hex at coord and spawns a random actor or
// transport on it. Only the terrain at the back of the sinking ledger may be
// flipped. It returns the spawned type name and moves the turn to the
// spinning phase.
func (e *GameEngine) FlipTile(coord CubeCoordinate) (string, error) {
	if err := e.requirePhase("flip a tile", Sinking); err != nil {
		return "", err
	}

	h := e.board.Hex(coord)
	if h == nil {
		return "", fmt.Errorf("%w: no tile at %s", ErrIllegalMove, coord)
	}
	switch h.PieceType() {
	case Water:
		return "", fmt.Errorf("%w: cannot flip a water tile", ErrIllegalMove)
	case Coral:
		return "", fmt.Errorf("%w: cannot flip a coral tile", ErrIllegalMove)
	}
	if len(e.islandPieces) == 0 {
		return "", fmt.Errorf("%w: no flippable tiles left", ErrIllegalMove)
	}
	back := &e.islandPieces[len(e.islandPieces)-1]
	if h.PieceType() != back.Type {
		return "", fmt.Errorf("%w: all %s tiles must sink before %s", ErrIllegalMove, back.Type, h.PieceType())
	}

	selected, ok := pickCreatable(e.rng, e.actors, e.transports)
	if !ok {
		return "", fmt.Errorf("%w: no actor or transport types registered", ErrGame)
	}

	// The ledger is only touched once the entity exists.
	var (
		actor     Actor
		transport Transport
		err       error
	)
	if e.actors.Has(selected) {
		actor, err = e.actors.Create(selected)
	} else {
		transport, err = e.transports.Create(selected)
	}
	if err != nil {
		return "", err
	}

	back.Count--
	if back.Count <= 0 {
		e.islandPieces = e.islandPieces[:len(e.islandPieces)-1]
	}
	h.SetPieceType(Water)

	var cas Casualties
	if actor != nil {
		if err := e.board.AddActor(actor, coord); err != nil {
			return "", err
		}
		cas = actor.DoAction(e.board)
	} else {
		if err := e.board.AddTransport(transport, coord); err != nil {
			return "", err
		}
		e.pickUpSwimmers(transport.ID(), coord)
	}
	e.applyCasualties(cas)
	e.record(Event{Kind: EventTileFlipped, To: coordPtr(coord), Detail: selected, Casualties: casualtiesPtr(cas)})

	if !e.state.Won {
		e.state.Phase = Spinning
		e.lastSpin = nil
	}
	return selected, nil
}

// SpinWheel picks a spinner section and a movement token for it. The wheel
// is spun once per turn, after a tile was flipped or once nothing is left to
// flip.
func (e *GameEngine) SpinWheel() (string, string, error) {
	if e.state.Won {
		return "", "", fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	switch {
	case e.state.Phase == Spinning:
	case e.state.Phase == Sinking && len(e.islandPieces) == 0:
	default:
		return "", "", fmt.Errorf("%w: cannot spin during the %s phase", ErrIllegalMove, e.state.Phase)
	}
	if e.lastSpin != nil {
		return "", "", fmt.Errorf("%w: the wheel was already spun this turn", ErrIllegalMove)
	}

	result, err := e.wheel.spin(e.rng)
	if err != nil {
		return "", "", err
	}
	e.state.Phase = Spinning
	e.lastSpin = &result
	e.record(Event{Kind: EventWheelSpun, Detail: result.Section + ":" + result.Moves})
	return result.Section, result.Moves, nil
}
