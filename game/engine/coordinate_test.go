package engine

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b CubeCoordinate
		want int
	}{
		{"same cell", origin, origin, 0},
		{"neighbour", origin, east, 1},
		{"two steps", origin, NewCubeCoordinate(2, -1, -1), 2},
		{"across", NewCubeCoordinate(-2, 1, 1), NewCubeCoordinate(2, -1, -1), 4},
		{"off centre", NewCubeCoordinate(3, -1, -2), NewCubeCoordinate(-1, 0, 1), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(%s, %s) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestNeighbours(t *testing.T) {
	c := NewCubeCoordinate(2, -3, 1)
	neighbours := c.Neighbours()

	if neighbours[0] != NewCubeCoordinate(3, -4, 1) {
		t.Errorf("first neighbour = %s, want (3,-4,1)", neighbours[0])
	}
	seen := make(map[CubeCoordinate]bool)
	for _, n := range neighbours {
		if Distance(c, n) != 1 {
			t.Errorf("neighbour %s is %d away", n, Distance(c, n))
		}
		if n.X+n.Y+n.Z != 0 {
			t.Errorf("neighbour %s breaks x+y+z=0", n)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct neighbours, got %d", len(seen))
	}
}

func TestCubeCoordinateOrdering(t *testing.T) {
	coords := []CubeCoordinate{
		{X: 1, Y: 0, Z: -1},
		{X: 0, Y: 1, Z: -1},
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	slices.SortFunc(coords, CubeCoordinate.Compare)

	want := []CubeCoordinate{
		{X: -1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 1, Z: -1},
		{X: 1, Y: 0, Z: -1},
	}
	if diff := cmp.Diff(want, coords); diff != "" {
		t.Errorf("sorted coordinates mismatch (-want +got):\n%s", diff)
	}
	if !origin.Less(east) || east.Less(origin) {
		t.Error("Less disagrees with Compare")
	}
}
