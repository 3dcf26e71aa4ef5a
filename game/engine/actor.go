package engine

// Built-in actor type names
const (
	SharkType      = "shark"
	KrakenType     = "kraken"
	SeamunsterType = "seamunster"
	VortexType     = "vortex"
)

// Actor is a hazard revealed by sinking tiles. Actors live in the Board's
// registry; DoAction applies the actor's effect to the hex it occupies.
type Actor interface {
	ID() int
	ActorType() string
	// Mobile reports whether the actor may be moved by the spinner
	Mobile() bool
	// DoAction applies the actor's on-reveal effect and reports what was removed
	DoAction(b *Board) Casualties
}

// Casualties lists the entities an actor removed from the board
type Casualties struct {
	Pawns      []Pawn `json:"pawns,omitempty"`
	Transports []int  `json:"transports,omitempty"`
	Actors     []int  `json:"actors,omitempty"`
}

// Empty reports whether nothing was removed
func (c Casualties) Empty() bool {
	return len(c.Pawns) == 0 && len(c.Transports) == 0 && len(c.Actors) == 0
}

func (c *Casualties) merge(o Casualties) {
	c.Pawns = append(c.Pawns, o.Pawns...)
	c.Transports = append(c.Transports, o.Transports...)
	c.Actors = append(c.Actors, o.Actors...)
}

// BaseActor carries the id shared by every actor variant. Custom actor types
// can embed it.
type BaseActor struct {
	ActorID int
}

// ID returns the actor id
func (a BaseActor) ID() int { return a.ActorID }

// Mobile is true for ordinary actors
func (a BaseActor) Mobile() bool { return true }

// Shark eats pawns swimming on its hex. Pawns aboard a transport are safe.
type Shark struct{ BaseActor }

// NewShark creates a shark
func NewShark(id int) Actor { return &Shark{BaseActor{id}} }

func (s *Shark) ActorType() string { return SharkType }

func (s *Shark) DoAction(b *Board) Casualties {
	at, ok := b.ActorCoordinates(s.ID())
	if !ok {
		return Casualties{}
	}
	return b.eatSwimmers(at)
}

// Kraken smashes transports on its hex. Sharks sharing the hex then feed on
// the passengers that were thrown into the water.
type Kraken struct{ BaseActor }

// NewKraken creates a kraken
func NewKraken(id int) Actor { return &Kraken{BaseActor{id}} }

func (k *Kraken) ActorType() string { return KrakenType }

func (k *Kraken) DoAction(b *Board) Casualties {
	at, ok := b.ActorCoordinates(k.ID())
	if !ok {
		return Casualties{}
	}
	result := b.sinkTransports(at)
	hex := b.Hex(at)
	for _, id := range hex.ActorIDs() {
		if other, ok := b.Actor(id); ok && other.ActorType() == SharkType {
			result.merge(other.DoAction(b))
		}
	}
	return result
}

// Seamunster smashes transports and eats every pawn on its hex
type Seamunster struct{ BaseActor }

// NewSeamunster creates a seamunster
func NewSeamunster(id int) Actor { return &Seamunster{BaseActor{id}} }

func (s *Seamunster) ActorType() string { return SeamunsterType }

func (s *Seamunster) DoAction(b *Board) Casualties {
	at, ok := b.ActorCoordinates(s.ID())
	if !ok {
		return Casualties{}
	}
	result := b.sinkTransports(at)
	result.merge(b.eatSwimmers(at))
	return result
}

// Vortex swallows everything on its hex and the surrounding hexes, then
// disappears itself. It never moves.
type Vortex struct{ BaseActor }

// NewVortex creates a vortex
func NewVortex(id int) Actor { return &Vortex{BaseActor{id}} }

func (v *Vortex) ActorType() string { return VortexType }

func (v *Vortex) Mobile() bool { return false }

func (v *Vortex) DoAction(b *Board) Casualties {
	at, ok := b.ActorCoordinates(v.ID())
	if !ok {
		return Casualties{}
	}
	result := b.clearHex(at)
	for _, n := range at.Neighbours() {
		result.merge(b.clearHex(n))
	}
	b.RemoveActor(v.ID())
	result.Actors = append(result.Actors, v.ID())
	return result
}
