package twisty

import "math"

// sliceTolerance is the allowed distance from a lattice value when testing
// slice membership. Snapping after every move keeps drift far below this,
// so membership never misclassifies.
const sliceTolerance = 0.1

// selectSlice returns the ids of the cubies currently occupying the given
// layer, by normalizing each cubie's world coordinate along the axis to the
// {-1,0,1} lattice. Membership changes move to move, so the selection is
// recomputed fresh every time.
func selectSlice(cubies []*Cubie, grid float64, axis Axis, slice int) []int {
	ids := make([]int, 0, 9)
	for _, c := range cubies {
		normalized := c.Position.Component(axis) / grid
		if math.Abs(normalized-float64(slice)) < sliceTolerance {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
