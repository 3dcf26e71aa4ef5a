package engine

import (
	"slices"
)

// Built-in transport type names
const (
	BoatType    = "boat"
	DolphinType = "dolphin"
)

// Transport is a vehicle that carries pawns across water
type Transport interface {
	ID() int
	TransportType() string
	// MaxCapacity is the number of seats
	MaxCapacity() int
	// Capacity is the number of free seats
	Capacity() int
	// Riders returns the pawns aboard in boarding order
	Riders() []Rider
	// AddPawn boards a pawn; it reports false when there is no free seat or
	// the pawn is already aboard
	AddPawn(p Pawn) bool
	RemovePawn(pawnID int)
	RemovePawns()
	HasPawn(pawnID int) bool
	// CanMove reports whether playerID is allowed to move the transport
	CanMove(playerID int) bool
	// Submersible transports can dive, dropping their riders
	Submersible() bool
}

// Rider identifies a pawn aboard a transport
type Rider struct {
	PawnID   int `json:"pawn_id"`
	PlayerID int `json:"player_id"`
}

// Carrier implements seat bookkeeping and the majority rule shared by the
// built-in transports. Custom transport types can embed it.
type Carrier struct {
	TransportID int
	Seats       int
	riders      []Rider
}

func (c *Carrier) ID() int          { return c.TransportID }
func (c *Carrier) MaxCapacity() int { return c.Seats }
func (c *Carrier) Capacity() int    { return c.Seats - len(c.riders) }
func (c *Carrier) Riders() []Rider  { return slices.Clone(c.riders) }
func (c *Carrier) Submersible() bool {
	return false
}

func (c *Carrier) AddPawn(p Pawn) bool {
	if c.Capacity() <= 0 || c.HasPawn(p.ID) {
		return false
	}
	c.riders = append(c.riders, Rider{PawnID: p.ID, PlayerID: p.PlayerID})
	return true
}

func (c *Carrier) RemovePawn(pawnID int) {
	c.riders = slices.DeleteFunc(c.riders, func(r Rider) bool { return r.PawnID == pawnID })
}

func (c *Carrier) RemovePawns() {
	c.riders = nil
}

func (c *Carrier) HasPawn(pawnID int) bool {
	return slices.ContainsFunc(c.riders, func(r Rider) bool { return r.PawnID == pawnID })
}

// CanMove allows a player to steer only if no other player has strictly more
// pawns aboard.
func (c *Carrier) CanMove(playerID int) bool {
	counts := make(map[int]int)
	for _, r := range c.riders {
		counts[r.PlayerID]++
	}
	own := counts[playerID]
	for _, n := range counts {
		if n > own {
			return false
		}
	}
	return true
}

// Boat carries up to three pawns
type Boat struct{ Carrier }

// NewBoat creates a boat
func NewBoat(id int) Transport {
	return &Boat{Carrier{TransportID: id, Seats: 3}}
}

func (b *Boat) TransportType() string { return BoatType }

// Dolphin carries a single pawn and can dive
type Dolphin struct{ Carrier }

// NewDolphin creates a dolphin
func NewDolphin(id int) Transport {
	return &Dolphin{Carrier{TransportID: id, Seats: 1}}
}

func (d *Dolphin) TransportType() string { return DolphinType }

func (d *Dolphin) Submersible() bool { return true }
