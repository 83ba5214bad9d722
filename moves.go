package twisty

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	eng.EnqueueAll([]twisty.Move{twisty.R, twisty.U, twisty.RPrime, twisty.UPrime}, 1)
var (
	// Right layer (x = 1)
	R      = Move{Axis: AxisX, Slice: 1, Dir: CW}  // Right clockwise
	RPrime = Move{Axis: AxisX, Slice: 1, Dir: CCW} // Right counter-clockwise

	// Left layer (x = -1)
	L      = Move{Axis: AxisX, Slice: -1, Dir: CCW} // Left clockwise
	LPrime = Move{Axis: AxisX, Slice: -1, Dir: CW}  // Left counter-clockwise

	// Up layer (y = 1)
	U      = Move{Axis: AxisY, Slice: 1, Dir: CW}  // Up clockwise
	UPrime = Move{Axis: AxisY, Slice: 1, Dir: CCW} // Up counter-clockwise

	// Down layer (y = -1)
	D      = Move{Axis: AxisY, Slice: -1, Dir: CCW} // Down clockwise
	DPrime = Move{Axis: AxisY, Slice: -1, Dir: CW}  // Down counter-clockwise

	// Front layer (z = 1)
	F      = Move{Axis: AxisZ, Slice: 1, Dir: CW}  // Front clockwise
	FPrime = Move{Axis: AxisZ, Slice: 1, Dir: CCW} // Front counter-clockwise

	// Back layer (z = -1)
	B      = Move{Axis: AxisZ, Slice: -1, Dir: CCW} // Back clockwise
	BPrime = Move{Axis: AxisZ, Slice: -1, Dir: CW}  // Back counter-clockwise

	// Middle slices
	M      = Move{Axis: AxisX, Slice: 0, Dir: CCW} // Middle, follows L
	MPrime = Move{Axis: AxisX, Slice: 0, Dir: CW}
	E      = Move{Axis: AxisY, Slice: 0, Dir: CCW} // Equator, follows D
	EPrime = Move{Axis: AxisY, Slice: 0, Dir: CW}
	S      = Move{Axis: AxisZ, Slice: 0, Dir: CW} // Standing, follows F
	SPrime = Move{Axis: AxisZ, Slice: 0, Dir: CCW}
)

// AllMoves lists the 18 legal quarter-turn moves.
var AllMoves = []Move{
	R, RPrime, L, LPrime,
	U, UPrime, D, DPrime,
	F, FPrime, B, BPrime,
	M, MPrime, E, EPrime, S, SPrime,
}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}
