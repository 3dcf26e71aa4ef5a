package engine

import (
	"fmt"
	"strconv"
)

// CheckPawnMovement returns the actions the current player would have left
// after moving the pawn from origin to target, or InvalidMove.
func (e *GameEngine) CheckPawnMovement(origin, target CubeCoordinate, pawnID int) int {
	left, _ := e.checkPawn(origin, target, pawnID)
	return left
}

func (e *GameEngine) checkPawn(origin, target CubeCoordinate, pawnID int) (int, string) {
	source, dest := e.board.Hex(origin), e.board.Hex(target)
	if source == nil || dest == nil {
		return InvalidMove, fmt.Sprintf("no hex at %s or %s", origin, target)
	}
	if !source.HasPawn(pawnID) {
		return InvalidMove, fmt.Sprintf("pawn %d is not at %s", pawnID, origin)
	}
	if dest.PawnAmount() >= MaxPawnsPerHex {
		return InvalidMove, fmt.Sprintf("hex %s is full", target)
	}
	if origin == target {
		return InvalidMove, "pawn is already there"
	}

	pawn, _ := e.board.Pawn(pawnID)
	player := e.GetCurrentPlayer()
	if player == nil || pawn.PlayerID != player.PlayerID() {
		return InvalidMove, fmt.Sprintf("pawn %d does not belong to player %d", pawnID, e.state.CurrentPlayer)
	}

	actions := player.ActionsLeft()
	distance := Distance(origin, target)
	if distance > actions {
		return InvalidMove, fmt.Sprintf("%s is %d hexes away, %d actions left", target, distance, actions)
	}

	if source.IsWaterTile() {
		if distance == 1 && actions >= MaxActionsPerTurn {
			return 0, ""
		}
		return InvalidMove, "a swimming pawn may only move one hex as its first action"
	}

	hops, ok := e.breadthFirst(origin, target, actions)
	if !ok {
		return InvalidMove, fmt.Sprintf("no land route from %s to %s within %d actions", origin, target, actions)
	}
	return actions - hops, ""
}

// MovePawn moves a pawn of the current player and returns the actions left.
// The pawn leaves any transport on the origin hex and boards a transport
// with a free seat on the target hex. Actors on the target then act.
func (e *GameEngine) MovePawn(origin, target CubeCoordinate, pawnID int) (int, error) {
	if err := e.requirePhase("move a pawn", Movement); err != nil {
		return InvalidMove, err
	}
	left, reason := e.checkPawn(origin, target, pawnID)
	if left < 0 {
		return InvalidMove, fmt.Errorf("%w: %s", ErrIllegalMove, reason)
	}

	player := e.GetCurrentPlayer()
	e.board.MovePawn(pawnID, target)
	e.boardFreeSeat(pawnID, target)
	player.SetActionsLeft(left)

	cas := e.resolveActors(target)
	e.record(Event{Kind: EventPawnMoved, From: coordPtr(origin), To: coordPtr(target), EntityID: pawnID, Casualties: casualtiesPtr(cas)})

	if _, alive := e.board.Pawn(pawnID); alive && e.board.Hex(target).PieceType() == Coral {
		e.declareWinner(player.PlayerID())
		return left, nil
	}
	if left == 0 && !e.state.Won {
		e.state.Phase = Sinking
	}
	return left, nil
}

// LegalPawnTargets lists every hex the pawn could move to right now
func (e *GameEngine) LegalPawnTargets(pawnID int) []CubeCoordinate {
	if e.state.Won || e.state.Phase != Movement {
		return nil
	}
	origin, ok := e.board.PawnCoordinates(pawnID)
	if !ok {
		return nil
	}
	var targets []CubeCoordinate
	for _, c := range e.board.Coordinates() {
		if e.CheckPawnMovement(origin, c, pawnID) >= 0 {
			targets = append(targets, c)
		}
	}
	return targets
}

// CheckActorMovement reports whether the actor may move from origin to
// target with the given spinner token. A dive token allows any distance.
func (e *GameEngine) CheckActorMovement(origin, target CubeCoordinate, actorID int, moves string) bool {
	_, ok := e.checkActor(origin, target, actorID, moves)
	return ok
}

func (e *GameEngine) checkActor(origin, target CubeCoordinate, actorID int, moves string) (string, bool) {
	source, dest := e.board.Hex(origin), e.board.Hex(target)
	if source == nil || dest == nil {
		return fmt.Sprintf("no hex at %s or %s", origin, target), false
	}
	if !source.HasActor(actorID) {
		return fmt.Sprintf("actor %d is not at %s", actorID, origin), false
	}
	actor, _ := e.board.Actor(actorID)
	if !actor.Mobile() {
		return fmt.Sprintf("%s %d cannot move", actor.ActorType(), actorID), false
	}
	if !dest.IsWaterTile() {
		return fmt.Sprintf("%s is not water", target), false
	}
	if origin != target && dest.ActorAmount() >= MaxActorsPerHex {
		return fmt.Sprintf("hex %s already has %d actors", target, MaxActorsPerHex), false
	}
	if moves == DiveMove {
		return "", true
	}
	n, err := strconv.Atoi(moves)
	if err != nil {
		return fmt.Sprintf("invalid move amount %q", moves), false
	}
	if Distance(origin, target) > n {
		return fmt.Sprintf("%s is more than %d hexes away", target, n), false
	}
	return "", true
}

// MoveActor moves an actor, which then acts on its new hex. A move made
// during the spinning phase ends the turn.
func (e *GameEngine) MoveActor(origin, target CubeCoordinate, actorID int, moves string) error {
	if e.state.Won {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if reason, ok := e.checkActor(origin, target, actorID, moves); !ok {
		return fmt.Errorf("%w: %s", ErrIllegalMove, reason)
	}

	e.board.MoveActor(actorID, target)
	cas := e.resolveActors(target)
	e.record(Event{Kind: EventActorMoved, From: coordPtr(origin), To: coordPtr(target), EntityID: actorID, Detail: moves, Casualties: casualtiesPtr(cas)})

	if e.state.Phase == Spinning && !e.state.Won {
		e.EndTurn()
	}
	return nil
}

// CheckTransportMovement returns the actions left after moving the transport
// with the given budget, or InvalidMove. Moves made while spinning always
// leave zero actions.
func (e *GameEngine) CheckTransportMovement(origin, target CubeCoordinate, transportID int, moves string) int {
	left, _ := e.checkTransport(origin, target, transportID, moves)
	return left
}

func (e *GameEngine) checkTransport(origin, target CubeCoordinate, transportID int, moves string) (int, string) {
	source, dest := e.board.Hex(origin), e.board.Hex(target)
	if source == nil || dest == nil {
		return InvalidMove, fmt.Sprintf("no hex at %s or %s", origin, target)
	}
	if !source.HasTransport(transportID) {
		return InvalidMove, fmt.Sprintf("transport %d is not at %s", transportID, origin)
	}
	if !dest.IsWaterTile() {
		return InvalidMove, fmt.Sprintf("%s is not water", target)
	}

	transport, _ := e.board.Transport(transportID)
	numMoves, distance := 0, 0
	if moves == DiveMove {
		if !transport.Submersible() {
			return InvalidMove, fmt.Sprintf("%s %d cannot dive", transport.TransportType(), transportID)
		}
		numMoves = MaxActionsPerTurn
	} else {
		n, err := strconv.Atoi(moves)
		if err != nil {
			return InvalidMove, fmt.Sprintf("invalid move amount %q", moves)
		}
		numMoves = n
		distance = Distance(origin, target)
		if distance > numMoves {
			return InvalidMove, fmt.Sprintf("%s is more than %d hexes away", target, numMoves)
		}
		empty := transport.Capacity() == transport.MaxCapacity()
		if !empty && !transport.CanMove(e.state.CurrentPlayer) {
			return InvalidMove, fmt.Sprintf("player %d does not control %s %d", e.state.CurrentPlayer, transport.TransportType(), transportID)
		}
	}

	if e.state.Phase == Spinning {
		return 0, ""
	}
	return numMoves - distance, ""
}

// MoveTransport moves a transport using the current player's actions as
// budget and returns the actions left
func (e *GameEngine) MoveTransport(origin, target CubeCoordinate, transportID int) (int, error) {
	if err := e.requirePhase("move a transport", Movement); err != nil {
		return InvalidMove, err
	}
	player := e.GetCurrentPlayer()
	if player == nil {
		return InvalidMove, fmt.Errorf("%w: no current player", ErrIllegalMove)
	}
	left, reason := e.checkTransport(origin, target, transportID, strconv.Itoa(player.ActionsLeft()))
	if left < 0 {
		return InvalidMove, fmt.Errorf("%w: %s", ErrIllegalMove, reason)
	}

	player.SetActionsLeft(left)
	cas := e.relocateTransport(transportID, target)
	e.record(Event{Kind: EventTransportMoved, From: coordPtr(origin), To: coordPtr(target), EntityID: transportID, Casualties: casualtiesPtr(cas)})

	if left == 0 && !e.state.Won {
		e.state.Phase = Sinking
	}
	return left, nil
}

// MoveTransportWithSpinner moves a transport by a spinner token and ends the
// turn. A dive drops the riders at the origin.
func (e *GameEngine) MoveTransportWithSpinner(origin, target CubeCoordinate, transportID int, moves string) (int, error) {
	if err := e.requirePhase("move a transport with the spinner", Spinning); err != nil {
		return InvalidMove, err
	}
	left, reason := e.checkTransport(origin, target, transportID, moves)
	if left < 0 {
		return InvalidMove, fmt.Errorf("%w: %s", ErrIllegalMove, reason)
	}

	if moves == DiveMove {
		t, _ := e.board.Transport(transportID)
		t.RemovePawns()
		left = 0
	}
	cas := e.relocateTransport(transportID, target)
	e.record(Event{Kind: EventTransportMoved, From: coordPtr(origin), To: coordPtr(target), EntityID: transportID, Detail: moves, Casualties: casualtiesPtr(cas)})

	if !e.state.Won {
		e.EndTurn()
	}
	return left, nil
}

// relocateTransport moves the transport, lets swimmers at the target climb
// aboard and triggers the actors there
func (e *GameEngine) relocateTransport(transportID int, target CubeCoordinate) Casualties {
	e.board.MoveTransport(transportID, target)
	e.pickUpSwimmers(transportID, target)
	return e.resolveActors(target)
}

// boardFreeSeat puts the pawn on the first transport at c with a free seat
func (e *GameEngine) boardFreeSeat(pawnID int, c CubeCoordinate) {
	for _, id := range e.board.Hex(c).TransportIDs() {
		if e.board.BoardTransport(pawnID, id) {
			return
		}
	}
}

// pickUpSwimmers boards pawns at c that are not on any transport
func (e *GameEngine) pickUpSwimmers(transportID int, c CubeCoordinate) {
	h := e.board.Hex(c)
	if h == nil {
		return
	}
	for _, id := range h.PawnIDs() {
		if _, riding := e.board.TransportOf(id); riding {
			continue
		}
		e.board.BoardTransport(id, transportID)
	}
}

func (e *GameEngine) requirePhase(action string, phase GamePhase) error {
	if e.state.Won {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if e.state.Phase != phase {
		return fmt.Errorf("%w: cannot %s during the %s phase", ErrIllegalMove, action, e.state.Phase)
	}
	return nil
}
