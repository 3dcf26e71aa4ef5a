package engine

import (
	"slices"
)

// Hex is one cell of the board. It records which entities occupy it by id;
// the entities themselves live in the Board.
type Hex struct {
	coord      CubeCoordinate
	pieceType  PieceType
	pawns      map[int]struct{}
	actors     map[int]struct{}
	transports map[int]struct{}

	neighbourCoords [6]CubeCoordinate
	neighbours      []CubeCoordinate
}

// NewHex creates an empty hex at coord with the given terrain
func NewHex(coord CubeCoordinate, pieceType PieceType) *Hex {
	return &Hex{
		coord:           coord,
		pieceType:       pieceType,
		pawns:           make(map[int]struct{}),
		actors:          make(map[int]struct{}),
		transports:      make(map[int]struct{}),
		neighbourCoords: coord.Neighbours(),
	}
}

// Coordinates returns the position of the hex
func (h *Hex) Coordinates() CubeCoordinate {
	return h.coord
}

// PieceType returns the terrain of the hex
func (h *Hex) PieceType() PieceType {
	return h.pieceType
}

// SetPieceType changes the terrain of the hex
func (h *Hex) SetPieceType(t PieceType) {
	h.pieceType = t
}

// IsWaterTile reports whether the hex has sunk
func (h *Hex) IsWaterTile() bool {
	return h.pieceType == Water
}

// NeighbourCoordinates returns the six theoretical neighbour coordinates in
// direction order.
func (h *Hex) NeighbourCoordinates() [6]CubeCoordinate {
	return h.neighbourCoords
}

// Neighbours returns the coordinates of neighbours that have been linked,
// that is, neighbours that existed on the board when either hex was added.
func (h *Hex) Neighbours() []CubeCoordinate {
	return slices.Clone(h.neighbours)
}

func (h *Hex) addNeighbour(c CubeCoordinate) {
	if !slices.Contains(h.neighbours, c) {
		h.neighbours = append(h.neighbours, c)
	}
}

// PawnAmount returns the number of pawns on the hex, including pawns aboard
// transports.
func (h *Hex) PawnAmount() int {
	return len(h.pawns)
}

// ActorAmount returns the number of actors on the hex
func (h *Hex) ActorAmount() int {
	return len(h.actors)
}

// TransportAmount returns the number of transports on the hex
func (h *Hex) TransportAmount() int {
	return len(h.transports)
}

// HasPawn reports whether the pawn stands on this hex
func (h *Hex) HasPawn(id int) bool {
	_, ok := h.pawns[id]
	return ok
}

// HasActor reports whether the actor is on this hex
func (h *Hex) HasActor(id int) bool {
	_, ok := h.actors[id]
	return ok
}

// HasTransport reports whether the transport is on this hex
func (h *Hex) HasTransport(id int) bool {
	_, ok := h.transports[id]
	return ok
}

// PawnIDs returns the ids of pawns on the hex in ascending order
func (h *Hex) PawnIDs() []int {
	return sortedIDs(h.pawns)
}

// ActorIDs returns the ids of actors on the hex in ascending order
func (h *Hex) ActorIDs() []int {
	return sortedIDs(h.actors)
}

// TransportIDs returns the ids of transports on the hex in ascending order
func (h *Hex) TransportIDs() []int {
	return sortedIDs(h.transports)
}

func (h *Hex) addPawn(id int)         { h.pawns[id] = struct{}{} }
func (h *Hex) removePawn(id int)      { delete(h.pawns, id) }
func (h *Hex) addActor(id int)        { h.actors[id] = struct{}{} }
func (h *Hex) removeActor(id int)     { delete(h.actors, id) }
func (h *Hex) addTransport(id int)    { h.transports[id] = struct{}{} }
func (h *Hex) removeTransport(id int) { delete(h.transports, id) }
