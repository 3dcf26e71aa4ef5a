package engine

import (
	"maps"
	"slices"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortedIDs returns the members of an id set in ascending order
func sortedIDs(set map[int]struct{}) []int {
	return sortedKeys(set)
}

func sortedKeys[V any](m map[int]V) []int {
	return slices.Sorted(maps.Keys(m))
}

// CountPieceType counts the hexes on the board with the given terrain
func CountPieceType(b *Board, t PieceType) int {
	count := 0
	for _, h := range b.hexes {
		if h.pieceType == t {
			count++
		}
	}
	return count
}

// NearestCoral returns the coral hex closest to c and its distance. It
// reports false when the board has no coral left.
func NearestCoral(b *Board, c CubeCoordinate) (CubeCoordinate, int, bool) {
	best := -1
	var nearest CubeCoordinate
	for _, coord := range b.Coordinates() {
		if b.hexes[coord].pieceType != Coral {
			continue
		}
		if d := Distance(c, coord); best == -1 || d < best {
			best = d
			nearest = coord
		}
	}
	return nearest, best, best != -1
}
