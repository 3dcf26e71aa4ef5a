package engine

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"
)

// ActorBuilder constructs an actor with the given id
type ActorBuilder func(id int) Actor

// TransportBuilder constructs a transport with the given id
type TransportBuilder func(id int) Transport

// ActorFactory maps actor type names to builders and hands out ids. Each
// engine owns its own factory.
type ActorFactory struct {
	builders map[string]ActorBuilder
	nextID   int
}

// NewActorFactory returns a factory with no registered types
func NewActorFactory() *ActorFactory {
	return &ActorFactory{builders: make(map[string]ActorBuilder), nextID: 1}
}

// DefaultActorFactory registers shark, kraken, seamunster and vortex
func DefaultActorFactory() *ActorFactory {
	f := NewActorFactory()
	f.Register(SharkType, NewShark)
	f.Register(KrakenType, NewKraken)
	f.Register(SeamunsterType, NewSeamunster)
	f.Register(VortexType, NewVortex)
	return f
}

// Register adds or replaces the builder for an actor type
func (f *ActorFactory) Register(name string, build ActorBuilder) {
	f.builders[name] = build
}

// Has reports whether name is registered
func (f *ActorFactory) Has(name string) bool {
	_, ok := f.builders[name]
	return ok
}

// Available returns the registered type names in ascending order
func (f *ActorFactory) Available() []string {
	return slices.Sorted(maps.Keys(f.builders))
}

// Create builds a new actor of the named type
func (f *ActorFactory) Create(name string) (Actor, error) {
	build, ok := f.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown actor type %q", ErrGame, name)
	}
	a := build(f.nextID)
	f.nextID++
	return a, nil
}

// TransportFactory maps transport type names to builders and hands out ids
type TransportFactory struct {
	builders map[string]TransportBuilder
	nextID   int
}

// NewTransportFactory returns a factory with no registered types
func NewTransportFactory() *TransportFactory {
	return &TransportFactory{builders: make(map[string]TransportBuilder), nextID: 1}
}

// DefaultTransportFactory registers boat and dolphin
func DefaultTransportFactory() *TransportFactory {
	f := NewTransportFactory()
	f.Register(BoatType, NewBoat)
	f.Register(DolphinType, NewDolphin)
	return f
}

// Register adds or replaces the builder for a transport type
func (f *TransportFactory) Register(name string, build TransportBuilder) {
	f.builders[name] = build
}

// Has reports whether name is registered
func (f *TransportFactory) Has(name string) bool {
	_, ok := f.builders[name]
	return ok
}

// Available returns the registered type names in ascending order
func (f *TransportFactory) Available() []string {
	return slices.Sorted(maps.Keys(f.builders))
}

// Create builds a new transport of the named type
func (f *TransportFactory) Create(name string) (Transport, error) {
	build, ok := f.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown transport type %q", ErrGame, name)
	}
	t := build(f.nextID)
	f.nextID++
	return t, nil
}

// pickCreatable shuffles the actor types followed by the transport types and
// returns the first. It reports false when nothing is registered.
func pickCreatable(rng *rand.Rand, actors *ActorFactory, transports *TransportFactory) (string, bool) {
	creatable := append(actors.Available(), transports.Available()...)
	if len(creatable) == 0 {
		return "", false
	}
	rng.Shuffle(len(creatable), func(i, j int) {
		creatable[i], creatable[j] = creatable[j], creatable[i]
	})
	return creatable[0], true
}
