package twisty

import "math"

// DefaultDragThreshold is the Euclidean screen distance, in pixels, a drag
// must cover before it is interpreted as a move. Shorter drags are no-ops.
const DefaultDragThreshold = 15.0

// Recognizer converts pointer drags into moves. A drag begins on a cubie
// with a known outward face normal; once the pointer has travelled the
// threshold distance, exactly one move is inferred from the drag direction
// and enqueued on the engine at speed 1.
//
// Recognition is suppressed while the engine is busy, so gesture moves can
// never be injected ahead of queued moves.
type Recognizer struct {
	engine    *Engine
	threshold float64

	active  bool
	fired   bool
	cubieID int
	normal  Vec3
	startX  float64
	startY  float64
}

// NewRecognizer creates a gesture recognizer bound to an engine.
func NewRecognizer(e *Engine) *Recognizer {
	return &Recognizer{engine: e, threshold: DefaultDragThreshold}
}

// SetThreshold overrides the drag distance threshold in pixels.
func (r *Recognizer) SetThreshold(px float64) {
	if px > 0 {
		r.threshold = px
	}
}

// Begin starts tracking a drag from pointer-down on a cubie. The normal is
// the outward world-space face normal at the point of contact. Ignored if
// the engine is busy or the cubie id is unknown.
func (r *Recognizer) Begin(cubieID int, normal Vec3, x, y float64) {
	if r.engine.Busy() {
		return
	}
	if _, err := r.engine.Cubie(cubieID); err != nil {
		return
	}
	r.active = true
	r.fired = false
	r.cubieID = cubieID
	r.normal = normal
	r.startX = x
	r.startY = y
}

// Update feeds the current pointer position. The first update past the
// drag threshold infers the move, enqueues it, and reports it; every
// subsequent update of the same drag is ignored. A drag still in flight
// when the engine becomes busy, for example from a keyboard move, is
// dropped rather than deferred.
func (r *Recognizer) Update(x, y float64) (Move, bool) {
	if !r.active || r.fired {
		return Move{}, false
	}
	if r.engine.Busy() {
		r.active = false
		return Move{}, false
	}

	dx := x - r.startX
	dy := y - r.startY
	if math.Hypot(dx, dy) < r.threshold {
		return Move{}, false
	}

	anchor, err := r.engine.Cubie(r.cubieID)
	if err != nil {
		r.active = false
		return Move{}, false
	}

	move := moveForDrag(r.normal, dx, dy, anchor.Position, r.engine.grid)
	r.fired = true
	r.engine.Enqueue(move, 1)
	return move, true
}

// End finishes the drag on pointer-up.
func (r *Recognizer) End() {
	r.active = false
	r.fired = false
}

// moveForDrag infers a move from a drag delta and the grabbed face.
//
// The drag is horizontal when |dx| > |dy|, else vertical. The rotation
// axis is the world axis that is neither the face axis nor the screen axis
// dominated by the drag; the slice is the grabbed cubie's lattice layer
// along that axis. Direction signs follow v = omega x r for the fixed
// front/right/top camera (screen x right, screen y down), and flip with
// the sign of the grabbed face so dragging a visible layer always turns it
// in the drag direction.
func moveForDrag(normal Vec3, dx, dy float64, anchor Vec3, grid float64) Move {
	horizontal := math.Abs(dx) > math.Abs(dy)

	var faceAxis Axis
	var faceSign float64
	switch {
	case math.Abs(normal.X) > 0.5:
		faceAxis, faceSign = AxisX, sign(normal.X)
	case math.Abs(normal.Y) > 0.5:
		faceAxis, faceSign = AxisY, sign(normal.Y)
	default:
		faceAxis, faceSign = AxisZ, sign(normal.Z)
	}
	if faceSign == 0 {
		faceSign = 1
	}

	var axis Axis
	var dir float64
	switch faceAxis {
	case AxisX:
		if horizontal {
			axis, dir = AxisY, sign(dx)*faceSign
		} else {
			axis, dir = AxisZ, -sign(dy)*faceSign
		}
	case AxisY:
		if horizontal {
			axis, dir = AxisZ, -sign(dx)*faceSign
		} else {
			axis, dir = AxisX, sign(dy)*faceSign
		}
	default:
		if horizontal {
			axis, dir = AxisY, sign(dx)*faceSign
		} else {
			axis, dir = AxisX, sign(dy)*faceSign
		}
	}

	slice := int(math.Round(anchor.Component(axis) / grid))
	if slice > 1 {
		slice = 1
	} else if slice < -1 {
		slice = -1
	}

	return Move{Axis: axis, Slice: slice, Dir: Direction(dir)}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
