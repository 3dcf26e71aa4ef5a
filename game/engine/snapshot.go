package engine

// HexView is the rendering view of one hex
type HexView struct {
	Coordinates CubeCoordinate `json:"coordinates"`
	PieceType   PieceType      `json:"piece_type"`
	Pawns       []int          `json:"pawns,omitempty"`
	Actors      []int          `json:"actors,omitempty"`
	Transports  []int          `json:"transports,omitempty"`
}

// ActorView describes an actor and where it is
type ActorView struct {
	ID          int            `json:"id"`
	Type        string         `json:"type"`
	Mobile      bool           `json:"mobile"`
	Coordinates CubeCoordinate `json:"coordinates"`
}

// TransportView describes a transport, its riders and where it is
type TransportView struct {
	ID          int            `json:"id"`
	Type        string         `json:"type"`
	Coordinates CubeCoordinate `json:"coordinates"`
	MaxCapacity int            `json:"max_capacity"`
	Capacity    int            `json:"capacity"`
	Submersible bool           `json:"submersible"`
	Riders      []Rider        `json:"riders,omitempty"`
}

// PlayerView is the public state of a player
type PlayerView struct {
	ID          int            `json:"id"`
	ActionsLeft int            `json:"actions_left"`
	PawnCount   int            `json:"pawn_count"`
	Start       CubeCoordinate `json:"start"`
}

// GameSnapshot is a read-only copy of everything a renderer needs
type GameSnapshot struct {
	State        GameState       `json:"state"`
	Players      []PlayerView    `json:"players"`
	Hexes        []HexView       `json:"hexes"`
	Pawns        []Pawn          `json:"pawns"`
	Actors       []ActorView     `json:"actors"`
	Transports   []TransportView `json:"transports"`
	IslandPieces []PieceCount    `json:"island_pieces"`
	IslandRadius int             `json:"island_radius"`
	LastSpin     *SpinResult     `json:"last_spin,omitempty"`
	Spinner      SpinnerLayout   `json:"spinner"`
}

// Snapshot copies the current board and state
func (e *GameEngine) Snapshot() GameSnapshot {
	snap := GameSnapshot{
		State:        *e.state,
		Players:      make([]PlayerView, 0, len(e.players)),
		Hexes:        make([]HexView, 0, e.board.HexCount()),
		Pawns:        e.board.Pawns(),
		Actors:       []ActorView{},
		Transports:   []TransportView{},
		IslandPieces: e.IslandPieces(),
		IslandRadius: e.islandRadius,
		Spinner:      e.GetSpinnerLayout(),
	}
	if e.lastSpin != nil {
		spin := *e.lastSpin
		snap.LastSpin = &spin
	}

	for _, p := range e.players {
		snap.Players = append(snap.Players, PlayerView{
			ID:          p.PlayerID(),
			ActionsLeft: p.ActionsLeft(),
			PawnCount:   p.PawnCount(),
			Start:       p.StartingCoordinates(),
		})
	}

	for _, c := range e.board.Coordinates() {
		h := e.board.Hex(c)
		snap.Hexes = append(snap.Hexes, HexView{
			Coordinates: c,
			PieceType:   h.PieceType(),
			Pawns:       h.PawnIDs(),
			Actors:      h.ActorIDs(),
			Transports:  h.TransportIDs(),
		})
	}

	for _, id := range e.board.ActorIDs() {
		a, _ := e.board.Actor(id)
		at, _ := e.board.ActorCoordinates(id)
		snap.Actors = append(snap.Actors, ActorView{ID: id, Type: a.ActorType(), Mobile: a.Mobile(), Coordinates: at})
	}

	for _, id := range e.board.TransportIDs() {
		t, _ := e.board.Transport(id)
		at, _ := e.board.TransportCoordinates(id)
		snap.Transports = append(snap.Transports, TransportView{
			ID:          id,
			Type:        t.TransportType(),
			Coordinates: at,
			MaxCapacity: t.MaxCapacity(),
			Capacity:    t.Capacity(),
			Submersible: t.Submersible(),
			Riders:      t.Riders(),
		})
	}
	return snap
}
