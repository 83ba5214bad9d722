package twisty

import "math"

// Cubie is one of the 27 unit sub-cubes composing the puzzle.
//
// Home is the cubie's immutable lattice coordinate in {-1,0,1}^3, assigned
// once at creation. It determines which faces carry stickers and never
// changes; it is not the cubie's current location. Position and Orientation
// are the current world transform, mutated in place by the engine and
// grid-aligned whenever no move is animating.
type Cubie struct {
	ID          int
	Home        Vec3
	Position    Vec3
	Orientation Mat3
}

// Euler returns the cubie's orientation as XYZ Euler angles in radians.
// At rest every angle is a multiple of pi/2.
func (c *Cubie) Euler() Vec3 {
	return c.Orientation.Euler()
}

// AtHome reports whether the cubie sits at its home lattice point with
// identity orientation.
func (c *Cubie) AtHome(grid float64) bool {
	return c.Position == c.Home.Scale(grid) && c.Orientation == Identity()
}

// snap aligns the cubie's transform to the canonical grid: position to the
// nearest lattice multiple per axis, orientation entries to {-1, 0, 1}.
// Idempotent on already-snapped transforms.
func (c *Cubie) snap(grid float64) {
	c.Position = Vec3{
		X: snapToGrid(c.Position.X, grid),
		Y: snapToGrid(c.Position.Y, grid),
		Z: snapToGrid(c.Position.Z, grid),
	}
	c.Orientation = c.Orientation.Snapped()
}

func snapToGrid(v, grid float64) float64 {
	return math.Round(v/grid) * grid
}

// newCubies enumerates the 27 cubies, one per lattice point of {-1,0,1}^3,
// with ids increasing in x-outer, y-middle, z-inner iteration order.
func newCubies(grid float64) []*Cubie {
	cubies := make([]*Cubie, 0, 27)
	id := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				home := V3(float64(x), float64(y), float64(z))
				cubies = append(cubies, &Cubie{
					ID:          id,
					Home:        home,
					Position:    home.Scale(grid),
					Orientation: Identity(),
				})
				id++
			}
		}
	}
	return cubies
}
