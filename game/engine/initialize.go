package engine

import "fmt"

// initializeBoard builds the island ring by ring from the centre outwards.
// Each layer of a piece entry is one ring. Coral is kept only near the
// corners; elsewhere on a coral ring the hex becomes water.
func (e *GameEngine) initializeBoard(pieces []PieceLayer) {
	ring := 0
	for i, piece := range pieces {
		for layer := 0; layer < piece.Layers; layer++ {
			if piece.Name.Sinkable() {
				e.islandRadius++
			}
			if i == 0 && layer == 0 {
				e.AddHexToBoard(CubeCoordinate{}, piece.Name)
			}

			coord := NewCubeCoordinate(-ring, 0, ring)
			for side := 0; side < 6; side++ {
				for step := 0; step < ring; step++ {
					t := piece.Name
					if t == Coral && abs(coord.X) >= e.goalSize && abs(coord.Y) >= e.goalSize && abs(coord.Z) >= e.goalSize {
						t = Water
					}
					neighbours := e.AddHexToBoard(coord, t)
					coord = neighbours[side]
				}
			}
			ring++
		}
	}
}

// initializePawns puts each player's pawns on their starting hex
func (e *GameEngine) initializePawns(pawnsPerPlayer int) error {
	for _, p := range e.players {
		start := p.StartingCoordinates()
		for n := 1; n <= pawnsPerPlayer; n++ {
			if err := e.board.AddPawn(p.PlayerID(), PawnID(p.PlayerID(), n), start); err != nil {
				return fmt.Errorf("placing pawns for player %d: %w", p.PlayerID(), err)
			}
		}
	}
	return nil
}

// coastPosition returns where the i-th boat goes for a given offset from
// the corners of the coastline ring
func coastPosition(i, radius, offset int) CubeCoordinate {
	switch i % 6 {
	case 0:
		return NewCubeCoordinate(radius, -radius+offset, -offset)
	case 1:
		return NewCubeCoordinate(-radius, radius-offset, offset)
	case 2:
		return NewCubeCoordinate(offset, -radius, radius-offset)
	case 3:
		return NewCubeCoordinate(-offset, radius, -radius+offset)
	case 4:
		return NewCubeCoordinate(radius-offset, offset, -radius)
	default:
		return NewCubeCoordinate(-radius+offset, -offset, radius)
	}
}

// initializeBoats places up to one boat per player on the coastline,
// opposing corners first, then along the sides. Positions without a water
// hex are skipped.
func (e *GameEngine) initializeBoats() error {
	if !e.transports.Has(BoatType) {
		return fmt.Errorf("%w: transport factory has no %q type", ErrGame, BoatType)
	}

	offset := 0
	for i := 0; i < len(e.players); i++ {
		if offset >= e.islandRadius {
			break
		}
		coord := coastPosition(i, e.islandRadius, offset)
		if i%6 == 5 {
			offset++
		}
		if !e.board.IsWaterTile(coord) {
			continue
		}
		boat, err := e.transports.Create(BoatType)
		if err != nil {
			return err
		}
		if err := e.board.AddTransport(boat, coord); err != nil {
			return err
		}
	}
	return nil
}
