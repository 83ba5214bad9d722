package twisty

// transform is a world-space pose: a position and a rotation.
type transform struct {
	pos Vec3
	rot Mat3
}

// pivot is the transient grouping that carries the cubies of the active
// slice through a rotation as one rigid body. It is created at the start of
// a move, owned exclusively by the engine while animating, and discarded
// when the move finishes; it holds no state between moves.
type pivot struct {
	axis   Axis
	dir    Direction
	angle  float64 // signed accumulated rotation, radians
	locals map[int]transform
}

func newPivot(axis Axis, dir Direction) *pivot {
	return &pivot{
		axis:   axis,
		dir:    dir,
		locals: make(map[int]transform, 9),
	}
}

// attach captures the cubie's transform in pivot-local space, preserving
// its world pose under the reparenting. The conversion inverts the pivot's
// current rotation; at attach time that rotation is identity, so the cubie
// does not visually jump.
func (p *pivot) attach(c *Cubie) {
	inv := RotationAbout(p.axis, p.angle).Transpose()
	p.locals[c.ID] = transform{
		pos: inv.MulVec(c.Position),
		rot: inv.Mul(c.Orientation),
	}
}

// apply writes the cubie's world transform for the pivot's current angle.
func (p *pivot) apply(c *Cubie) {
	r := RotationAbout(p.axis, p.angle)
	l := p.locals[c.ID]
	c.Position = r.MulVec(l.pos)
	c.Orientation = r.Mul(l.rot)
}

// detach converts the cubie back to world space using the exact quarter
// turn instead of the ticked angle, then snaps the result to the lattice.
// This corrects any residual float error from incremental steps.
func (p *pivot) detach(c *Cubie, grid float64) {
	r := quarterTurn(p.axis, p.dir)
	l := p.locals[c.ID]
	c.Position = r.MulVec(l.pos)
	c.Orientation = r.Mul(l.rot)
	c.snap(grid)
	delete(p.locals, c.ID)
}
