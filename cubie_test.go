package twisty

import (
	"math"
	"testing"
)

func TestNewEngine_PartitionInvariant(t *testing.T) {
	eng := NewEngine()
	cubies := eng.Cubies()

	if len(cubies) != 27 {
		t.Fatalf("expected 27 cubies, got %d", len(cubies))
	}

	seen := make(map[Vec3]int)
	for _, c := range cubies {
		for _, v := range []float64{c.Home.X, c.Home.Y, c.Home.Z} {
			if v != -1 && v != 0 && v != 1 {
				t.Errorf("cubie %d home %v outside lattice", c.ID, c.Home)
			}
		}
		if prev, dup := seen[c.Home]; dup {
			t.Errorf("cubies %d and %d share home %v", prev, c.ID, c.Home)
		}
		seen[c.Home] = c.ID
	}
	if len(seen) != 27 {
		t.Errorf("homes cover %d lattice points, want 27", len(seen))
	}
}

func TestNewEngine_SeedOrder(t *testing.T) {
	// Ids increase x-outer, y-middle, z-inner.
	eng := NewEngine()
	first, _ := eng.Cubie(0)
	if first.Home != V3(-1, -1, -1) {
		t.Errorf("cubie 0 home = %v, want (-1,-1,-1)", first.Home)
	}
	last, _ := eng.Cubie(26)
	if last.Home != V3(1, 1, 1) {
		t.Errorf("cubie 26 home = %v, want (1,1,1)", last.Home)
	}
	second, _ := eng.Cubie(1)
	if second.Home != V3(-1, -1, 0) {
		t.Errorf("cubie 1 home = %v, want (-1,-1,0) (z inner)", second.Home)
	}
}

func TestNewEngine_StartsSolved(t *testing.T) {
	eng := NewEngine()
	if !eng.Solved() {
		t.Error("new engine should start solved")
	}
}

func TestSnap_Idempotent(t *testing.T) {
	grid := 1 + DefaultGap
	c := &Cubie{
		Position:    V3(grid+1e-9, -grid, 0),
		Orientation: RotationAbout(AxisY, math.Pi/2),
	}

	c.snap(grid)
	pos, rot := c.Position, c.Orientation
	c.snap(grid)

	if c.Position != pos || c.Orientation != rot {
		t.Error("snapping an already-snapped transform should be a no-op")
	}
	if c.Position != V3(grid, -grid, 0) {
		t.Errorf("snapped position = %v, want (%v,%v,0)", c.Position, grid, -grid)
	}
	if c.Orientation != quarterTurn(AxisY, CCW) {
		t.Errorf("snapped orientation = %v, want exact quarter turn", c.Orientation)
	}
}

func TestCubieEuler_MultiplesOfQuarterTurnAtRest(t *testing.T) {
	c := &Cubie{Orientation: quarterTurn(AxisX, CW)}
	e := c.Euler()
	quarter := math.Pi / 2
	for _, v := range []float64{e.X, e.Y, e.Z} {
		ratio := v / quarter
		if math.Abs(ratio-math.Round(ratio)) > 1e-9 {
			t.Errorf("euler angle %v is not a multiple of 90 degrees", v)
		}
	}
}

func TestSelectSlice_Cardinality(t *testing.T) {
	eng := NewEngine()
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for slice := -1; slice <= 1; slice++ {
			ids := selectSlice(eng.cubies, eng.grid, axis, slice)
			if len(ids) != 9 {
				t.Errorf("selectSlice(%s, %d) returned %d ids, want 9", axis, slice, len(ids))
			}
			unique := make(map[int]bool, len(ids))
			for _, id := range ids {
				unique[id] = true
			}
			if len(unique) != len(ids) {
				t.Errorf("selectSlice(%s, %d) returned duplicate ids", axis, slice)
			}
		}
	}
}

func TestSelectSlice_MembershipChangesAfterMove(t *testing.T) {
	eng := NewEngine()
	before := selectSlice(eng.cubies, eng.grid, AxisY, 1)

	// R carries three top-layer cubies away from y=1.
	eng.Enqueue(R, 1)
	eng.Advance(time1s)

	after := selectSlice(eng.cubies, eng.grid, AxisY, 1)
	if len(after) != 9 {
		t.Fatalf("top layer has %d cubies after R, want 9", len(after))
	}
	if equalIDs(before, after) {
		t.Error("top layer membership should change after R")
	}
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}
