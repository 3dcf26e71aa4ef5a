package engine

import (
	"fmt"
	"maps"
	"slices"
)

// Board owns every hex and every entity on the island. Hexes record their
// occupants by id and the board keeps the reverse index, so each mutation
// below updates both sides before returning.
type Board struct {
	hexes       map[CubeCoordinate]*Hex
	pawns       map[int]*Pawn
	actors      map[int]Actor
	actorAt     map[int]CubeCoordinate
	transports  map[int]Transport
	transportAt map[int]CubeCoordinate
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		hexes:       make(map[CubeCoordinate]*Hex),
		pawns:       make(map[int]*Pawn),
		actors:      make(map[int]Actor),
		actorAt:     make(map[int]CubeCoordinate),
		transports:  make(map[int]Transport),
		transportAt: make(map[int]CubeCoordinate),
	}
}

// Hex returns the hex at c, or nil when the board has no hex there
func (b *Board) Hex(c CubeCoordinate) *Hex {
	return b.hexes[c]
}

// HexCount returns the number of hexes on the board
func (b *Board) HexCount() int {
	return len(b.hexes)
}

// Coordinates returns every hex coordinate in ascending order
func (b *Board) Coordinates() []CubeCoordinate {
	coords := slices.Collect(maps.Keys(b.hexes))
	slices.SortFunc(coords, CubeCoordinate.Compare)
	return coords
}

// AddHex inserts h, replacing any hex already at its coordinates. Entities on
// a replaced hex are carried over to h. The new hex and its existing
// neighbours are linked to each other.
func (b *Board) AddHex(h *Hex) {
	if h == nil {
		return
	}
	if prev, ok := b.hexes[h.coord]; ok {
		maps.Copy(h.pawns, prev.pawns)
		maps.Copy(h.actors, prev.actors)
		maps.Copy(h.transports, prev.transports)
	}
	for _, n := range h.neighbourCoords {
		if neighbour, ok := b.hexes[n]; ok {
			h.addNeighbour(n)
			neighbour.addNeighbour(h.coord)
		}
	}
	b.hexes[h.coord] = h
}

// IsWaterTile reports whether a hex exists at c and is water
func (b *Board) IsWaterTile(c CubeCoordinate) bool {
	h := b.hexes[c]
	return h != nil && h.IsWaterTile()
}

// CheckTileOccupation returns the number of pawns at c, or -1 if there is no
// hex there
func (b *Board) CheckTileOccupation(c CubeCoordinate) int {
	h := b.hexes[c]
	if h == nil {
		return -1
	}
	return h.PawnAmount()
}

// AddPawn places a new pawn on the hex at c
func (b *Board) AddPawn(playerID, pawnID int, c CubeCoordinate) error {
	h := b.hexes[c]
	if h == nil {
		return fmt.Errorf("%w: no hex at %s for pawn %d", ErrGame, c, pawnID)
	}
	if _, exists := b.pawns[pawnID]; exists {
		return fmt.Errorf("%w: pawn %d already on the board", ErrGame, pawnID)
	}
	b.pawns[pawnID] = &Pawn{ID: pawnID, PlayerID: playerID, Coordinates: c}
	h.addPawn(pawnID)
	return nil
}

// Pawn returns a copy of the pawn with the given id
func (b *Board) Pawn(id int) (Pawn, bool) {
	p, ok := b.pawns[id]
	if !ok {
		return Pawn{}, false
	}
	return *p, true
}

// PawnCoordinates returns where the pawn is
func (b *Board) PawnCoordinates(id int) (CubeCoordinate, bool) {
	p, ok := b.pawns[id]
	if !ok {
		return CubeCoordinate{}, false
	}
	return p.Coordinates, true
}

// Pawns returns copies of all pawns ordered by id
func (b *Board) Pawns() []Pawn {
	result := make([]Pawn, 0, len(b.pawns))
	for _, id := range sortedKeys(b.pawns) {
		result = append(result, *b.pawns[id])
	}
	return result
}

// MovePawn relocates a pawn to c, leaving any transport it was aboard.
// Moving to a coordinate without a hex, or moving an unknown pawn, does
// nothing.
func (b *Board) MovePawn(pawnID int, c CubeCoordinate) {
	p, ok := b.pawns[pawnID]
	target := b.hexes[c]
	if !ok || target == nil {
		return
	}
	b.unboard(p)
	if source := b.hexes[p.Coordinates]; source != nil {
		source.removePawn(pawnID)
	}
	target.addPawn(pawnID)
	p.Coordinates = c
}

// RemovePawn takes a pawn off the board and returns it
func (b *Board) RemovePawn(pawnID int) (Pawn, bool) {
	p, ok := b.pawns[pawnID]
	if !ok {
		return Pawn{}, false
	}
	b.unboard(p)
	if h := b.hexes[p.Coordinates]; h != nil {
		h.removePawn(pawnID)
	}
	delete(b.pawns, pawnID)
	return *p, true
}

// AddActor places an actor on the hex at c
func (b *Board) AddActor(a Actor, c CubeCoordinate) error {
	if a == nil {
		return fmt.Errorf("%w: nil actor", ErrGame)
	}
	h := b.hexes[c]
	if h == nil {
		return fmt.Errorf("%w: no hex at %s for actor %d", ErrGame, c, a.ID())
	}
	if _, exists := b.actors[a.ID()]; exists {
		b.RemoveActor(a.ID())
	}
	b.actors[a.ID()] = a
	b.actorAt[a.ID()] = c
	h.addActor(a.ID())
	return nil
}

// Actor returns the actor with the given id
func (b *Board) Actor(id int) (Actor, bool) {
	a, ok := b.actors[id]
	return a, ok
}

// ActorCoordinates returns where the actor is
func (b *Board) ActorCoordinates(id int) (CubeCoordinate, bool) {
	c, ok := b.actorAt[id]
	return c, ok
}

// ActorIDs returns the ids of all actors in ascending order
func (b *Board) ActorIDs() []int {
	return sortedKeys(b.actors)
}

// MoveActor relocates an actor to c. Unknown actors, immobile actors and
// missing target hexes leave the board unchanged.
func (b *Board) MoveActor(actorID int, c CubeCoordinate) {
	a, ok := b.actors[actorID]
	target := b.hexes[c]
	if !ok || target == nil || !a.Mobile() {
		return
	}
	if source := b.hexes[b.actorAt[actorID]]; source != nil {
		source.removeActor(actorID)
	}
	target.addActor(actorID)
	b.actorAt[actorID] = c
}

// RemoveActor takes an actor off the board
func (b *Board) RemoveActor(actorID int) {
	c, ok := b.actorAt[actorID]
	if !ok {
		return
	}
	if h := b.hexes[c]; h != nil {
		h.removeActor(actorID)
	}
	delete(b.actors, actorID)
	delete(b.actorAt, actorID)
}

// AddTransport places a transport on the hex at c
func (b *Board) AddTransport(t Transport, c CubeCoordinate) error {
	if t == nil {
		return fmt.Errorf("%w: nil transport", ErrGame)
	}
	h := b.hexes[c]
	if h == nil {
		return fmt.Errorf("%w: no hex at %s for transport %d", ErrGame, c, t.ID())
	}
	if _, exists := b.transports[t.ID()]; exists {
		b.RemoveTransport(t.ID())
	}
	b.transports[t.ID()] = t
	b.transportAt[t.ID()] = c
	h.addTransport(t.ID())
	return nil
}

// Transport returns the transport with the given id
func (b *Board) Transport(id int) (Transport, bool) {
	t, ok := b.transports[id]
	return t, ok
}

// TransportCoordinates returns where the transport is
func (b *Board) TransportCoordinates(id int) (CubeCoordinate, bool) {
	c, ok := b.transportAt[id]
	return c, ok
}

// TransportIDs returns the ids of all transports in ascending order
func (b *Board) TransportIDs() []int {
	return sortedKeys(b.transports)
}

// MoveTransport relocates a transport and every pawn aboard it to c.
// Unknown transports and missing target hexes leave the board unchanged.
func (b *Board) MoveTransport(transportID int, c CubeCoordinate) {
	t, ok := b.transports[transportID]
	target := b.hexes[c]
	if !ok || target == nil {
		return
	}
	if source := b.hexes[b.transportAt[transportID]]; source != nil {
		source.removeTransport(transportID)
		for _, r := range t.Riders() {
			source.removePawn(r.PawnID)
		}
	}
	for _, r := range t.Riders() {
		if p, ok := b.pawns[r.PawnID]; ok {
			p.Coordinates = c
			target.addPawn(r.PawnID)
		}
	}
	target.addTransport(transportID)
	b.transportAt[transportID] = c
}

// RemoveTransport takes a transport off the board. Its riders stay on the hex.
func (b *Board) RemoveTransport(transportID int) {
	c, ok := b.transportAt[transportID]
	if !ok {
		return
	}
	b.transports[transportID].RemovePawns()
	if h := b.hexes[c]; h != nil {
		h.removeTransport(transportID)
	}
	delete(b.transports, transportID)
	delete(b.transportAt, transportID)
}

// BoardTransport puts a pawn aboard a transport on the same hex. It reports
// false if either is missing, they are on different hexes, the pawn is
// already riding something, or there is no free seat.
func (b *Board) BoardTransport(pawnID, transportID int) bool {
	p, ok := b.pawns[pawnID]
	if !ok {
		return false
	}
	t, ok := b.transports[transportID]
	if !ok || b.transportAt[transportID] != p.Coordinates {
		return false
	}
	if _, riding := b.TransportOf(pawnID); riding {
		return false
	}
	return t.AddPawn(*p)
}

// TransportOf returns the transport the pawn is aboard, if any
func (b *Board) TransportOf(pawnID int) (Transport, bool) {
	p, ok := b.pawns[pawnID]
	if !ok {
		return nil, false
	}
	h := b.hexes[p.Coordinates]
	if h == nil {
		return nil, false
	}
	for _, id := range h.TransportIDs() {
		if t := b.transports[id]; t.HasPawn(pawnID) {
			return t, true
		}
	}
	return nil, false
}

func (b *Board) unboard(p *Pawn) {
	if t, ok := b.TransportOf(p.ID); ok {
		t.RemovePawn(p.ID)
	}
}

// eatSwimmers removes pawns at c that are not aboard a transport
func (b *Board) eatSwimmers(c CubeCoordinate) Casualties {
	var result Casualties
	h := b.hexes[c]
	if h == nil {
		return result
	}
	for _, id := range h.PawnIDs() {
		if _, riding := b.TransportOf(id); riding {
			continue
		}
		if p, ok := b.RemovePawn(id); ok {
			result.Pawns = append(result.Pawns, p)
		}
	}
	return result
}

// sinkTransports destroys every transport at c; riders end up in the water
func (b *Board) sinkTransports(c CubeCoordinate) Casualties {
	var result Casualties
	h := b.hexes[c]
	if h == nil {
		return result
	}
	for _, id := range h.TransportIDs() {
		b.RemoveTransport(id)
		result.Transports = append(result.Transports, id)
	}
	return result
}

// clearHex removes transports, pawns and non-vortex actors at c
func (b *Board) clearHex(c CubeCoordinate) Casualties {
	result := b.sinkTransports(c)
	result.merge(b.eatSwimmers(c))
	h := b.hexes[c]
	if h == nil {
		return result
	}
	for _, id := range h.ActorIDs() {
		if a := b.actors[id]; a.ActorType() == VortexType {
			continue
		}
		b.RemoveActor(id)
		result.Actors = append(result.Actors, id)
	}
	return result
}
