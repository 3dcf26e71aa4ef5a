package engine

// breadthFirst searches for a land route from origin to target. Only
// existing land hexes below the pawn cap are expanded; the origin is always
// expanded. The target is accepted as soon as it is discovered next to an
// expanded hex, whatever its terrain. It returns the hop count of the
// shortest route and whether that route fits within budget.
func (e *GameEngine) breadthFirst(origin, target CubeCoordinate, budget int) (int, bool) {
	start := e.board.Hex(origin)
	if start == nil || e.board.Hex(target) == nil || start.IsWaterTile() {
		return 0, false
	}

	parent := map[CubeCoordinate]CubeCoordinate{origin: origin}
	queue := []CubeCoordinate{origin}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		h := e.board.Hex(current)
		if current != origin && (h.IsWaterTile() || h.PawnAmount() >= MaxPawnsPerHex) {
			continue
		}

		for _, n := range h.NeighbourCoordinates() {
			if e.board.Hex(n) == nil {
				continue
			}
			if n == target {
				hops := 1
				for c := current; c != origin; c = parent[c] {
					hops++
				}
				return hops, hops <= budget
			}
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = current
			queue = append(queue, n)
		}
	}
	return 0, false
}
