package engine

import (
	"cmp"
	"fmt"
)

// CubeCoordinate identifies a hex cell on the board.
// By convention X+Y+Z == 0; constructors do not enforce it.
type CubeCoordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// neighbourOffsets lists the six hex directions in the fixed order used for
// ring walking and path search exploration.
var neighbourOffsets = [6]CubeCoordinate{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

// NewCubeCoordinate creates a coordinate from its three components
func NewCubeCoordinate(x, y, z int) CubeCoordinate {
	return CubeCoordinate{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two coordinates
func (c CubeCoordinate) Add(o CubeCoordinate) CubeCoordinate {
	return CubeCoordinate{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Compare orders coordinates lexicographically by X, then Y, then Z
func (c CubeCoordinate) Compare(o CubeCoordinate) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	if r := cmp.Compare(c.Y, o.Y); r != 0 {
		return r
	}
	return cmp.Compare(c.Z, o.Z)
}

// Less reports whether c sorts before o
func (c CubeCoordinate) Less(o CubeCoordinate) bool {
	return c.Compare(o) < 0
}

// Neighbours returns the six theoretical neighbour coordinates.
// The returned cells may or may not exist on a board.
func (c CubeCoordinate) Neighbours() [6]CubeCoordinate {
	var result [6]CubeCoordinate
	for i, offset := range neighbourOffsets {
		result[i] = c.Add(offset)
	}
	return result
}

func (c CubeCoordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Distance returns the hex-grid distance between two coordinates
func Distance(a, b CubeCoordinate) int {
	return (abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)) / 2
}
