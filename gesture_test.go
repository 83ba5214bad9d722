package twisty

import "testing"

// cubieAt returns the id of the cubie whose home is the given lattice point.
func cubieAt(t *testing.T, eng *Engine, x, y, z float64) int {
	t.Helper()
	for _, c := range eng.Cubies() {
		if c.Home == V3(x, y, z) {
			return c.ID
		}
	}
	t.Fatalf("no cubie with home (%v,%v,%v)", x, y, z)
	return -1
}

func dragOnce(t *testing.T, eng *Engine, id int, normal Vec3, dx, dy float64) (Move, bool) {
	t.Helper()
	r := NewRecognizer(eng)
	r.Begin(id, normal, 100, 100)
	m, ok := r.Update(100+dx, 100+dy)
	r.End()
	return m, ok
}

func TestGesture_BelowThresholdIsNoop(t *testing.T) {
	eng := NewEngine()
	id := cubieAt(t, eng, 1, 1, 1)

	if _, ok := dragOnce(t, eng, id, V3(0, 0, 1), 10, 0); ok {
		t.Error("10px drag is below the 15px threshold and must not move")
	}
	if eng.Busy() {
		t.Error("nothing should be enqueued by a sub-threshold drag")
	}
}

func TestGesture_Deterministic(t *testing.T) {
	normal := V3(0, 0, 1)
	var first Move
	for i := 0; i < 5; i++ {
		eng := NewEngine()
		id := cubieAt(t, eng, 1, 1, 1)
		m, ok := dragOnce(t, eng, id, normal, 40, -3)
		if !ok {
			t.Fatal("drag past threshold should produce a move")
		}
		if i == 0 {
			first = m
		} else if m != first {
			t.Fatalf("identical drags produced %v and %v", first, m)
		}
	}
}

func TestGesture_FiresOncePerDrag(t *testing.T) {
	eng := NewEngine()
	id := cubieAt(t, eng, 1, 1, 1)

	r := NewRecognizer(eng)
	r.Begin(id, V3(0, 0, 1), 0, 0)
	if _, ok := r.Update(40, 0); !ok {
		t.Fatal("first update past threshold should fire")
	}
	if _, ok := r.Update(80, 0); ok {
		t.Error("a drag must produce at most one move")
	}
	if eng.Pending()+boolToInt(eng.Animating()) != 1 {
		t.Errorf("exactly one move should be enqueued")
	}
}

func TestGesture_SuppressedWhileBusy(t *testing.T) {
	eng := NewEngine()
	id := cubieAt(t, eng, 1, 1, 1)

	eng.Enqueue(R, 1)

	r := NewRecognizer(eng)
	r.Begin(id, V3(0, 0, 1), 0, 0)
	if _, ok := r.Update(40, 0); ok {
		t.Error("gesture recognition must be suppressed while the engine is busy")
	}
}

func TestGesture_DragDroppedWhenMoveArrivesMidDrag(t *testing.T) {
	eng := NewEngine()
	id := cubieAt(t, eng, 1, 1, 1)

	r := NewRecognizer(eng)
	r.Begin(id, V3(0, 0, 1), 0, 0)

	// A keyboard move lands while the drag is in flight.
	eng.Enqueue(R, 1)

	if _, ok := r.Update(40, 0); ok {
		t.Error("drag must not fire once the engine is busy")
	}

	drain(eng)

	// The drag was dropped, not deferred.
	if _, ok := r.Update(80, 0); ok {
		t.Error("a dropped drag must not fire after the queue drains")
	}
	if got := FormatMoves(eng.Moves()); got != "R" {
		t.Errorf("history = %q, want just the queued R", got)
	}
}

// The six face cases of the sign table. Screen x grows right, screen y
// grows down; the grabbed cubie is the (1,1,1) corner so every rotation
// axis resolves to slice 1.
func TestGesture_SignTable(t *testing.T) {
	cases := []struct {
		name   string
		normal Vec3
		dx, dy float64
		want   Move
	}{
		// Front face (+z): drag right turns the top layer with the drag.
		{"front right", V3(0, 0, 1), 40, 0, Move{AxisY, 1, CCW}},
		{"front left", V3(0, 0, 1), -40, 0, Move{AxisY, 1, CW}},
		// Front face vertical: dragging the right column up is R.
		{"front up", V3(0, 0, 1), 0, -40, Move{AxisX, 1, CW}},
		{"front down", V3(0, 0, 1), 0, 40, Move{AxisX, 1, CCW}},
		// Back face flips the horizontal sense.
		{"back right", V3(0, 0, -1), 40, 0, Move{AxisY, 1, CW}},
		// Right face (+x): horizontal drags rotate about y.
		{"right right", V3(1, 0, 0), 40, 0, Move{AxisY, 1, CCW}},
		{"right up", V3(1, 0, 0), 0, -40, Move{AxisZ, 1, CCW}},
		// Left face flips both senses.
		{"left right", V3(-1, 0, 0), 40, 0, Move{AxisY, 1, CW}},
		{"left up", V3(-1, 0, 0), 0, -40, Move{AxisZ, 1, CW}},
		// Top face (+y): horizontal drags rotate about z.
		{"top right", V3(0, 1, 0), 40, 0, Move{AxisZ, 1, CW}},
		{"top down", V3(0, 1, 0), 0, 40, Move{AxisX, 1, CCW}},
		// Bottom face flips.
		{"bottom right", V3(0, -1, 0), 40, 0, Move{AxisZ, 1, CCW}},
	}

	for _, c := range cases {
		eng := NewEngine()
		id := cubieAt(t, eng, 1, 1, 1)
		got, ok := dragOnce(t, eng, id, c.normal, c.dx, c.dy)
		if !ok {
			t.Errorf("%s: no move produced", c.name)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %v (%s), want %v (%s)", c.name, got, got.Notation(), c.want, c.want.Notation())
		}
	}
}

func TestGesture_SliceFromGrabbedCubie(t *testing.T) {
	eng := NewEngine()

	// Grabbing a middle-column cubie on the front face selects slice 0.
	id := cubieAt(t, eng, 0, 1, 1)
	got, ok := dragOnce(t, eng, id, V3(0, 0, 1), 0, 40)
	if !ok {
		t.Fatal("drag should produce a move")
	}
	if got.Axis != AxisX || got.Slice != 0 {
		t.Errorf("vertical drag on middle column = %v, want x-axis slice 0", got)
	}
}

func TestGesture_DragAndOppositeDragRestore(t *testing.T) {
	eng := NewEngine()
	id := cubieAt(t, eng, 1, 1, 1)

	if _, ok := dragOnce(t, eng, id, V3(0, 0, 1), 40, 0); !ok {
		t.Fatal("first drag should move")
	}
	drain(eng)

	// The layer rotated; grab whatever cubie now fronts that corner.
	var grabbed int = -1
	for _, c := range eng.Cubies() {
		if c.Position == V3(eng.GridStep(), eng.GridStep(), eng.GridStep()) {
			grabbed = c.ID
			break
		}
	}
	if grabbed == -1 {
		t.Fatal("no cubie at the front-top-right corner after the turn")
	}

	if _, ok := dragOnce(t, eng, grabbed, V3(0, 0, 1), -40, 0); !ok {
		t.Fatal("second drag should move")
	}
	drain(eng)

	if !eng.Solved() {
		t.Error("opposite drags on the same face should cancel out")
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
