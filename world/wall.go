package world

import "github.com/jakecoffman/cp"

// Wall is an axis-aligned rectangle on the horizontal world plane. World X
// maps to L..R and world Z maps to B..T. Walls are immutable once a scene
// constructs them; the movement controller only reads them.
type Wall = cp.BB

// NewWall builds a wall from min/max world coordinates.
func NewWall(minX, maxX, minZ, maxZ float64) Wall {
	return cp.BB{L: minX, B: minZ, R: maxX, T: maxZ}
}

// Walls is the read-only obstacle set for one scene. A nil or empty set
// means no constraint.
type Walls []Wall

// Blocked reports whether a player centered at (x, z) with the given
// half-width overlaps any wall. Overlap requires strict inequality on both
// axes so grazing contact along an edge still counts as free; multiple
// overlapping walls act as a single rejecting union.
func (ws Walls) Blocked(x, z, halfWidth float64) bool {
	for _, w := range ws {
		if x+halfWidth > w.L && x-halfWidth < w.R &&
			z+halfWidth > w.B && z-halfWidth < w.T {
			return true
		}
	}
	return false
}
