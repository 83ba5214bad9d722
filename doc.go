// Package twisty implements the mechanics engine for an interactive 3x3x3
// twisty puzzle: the 27-cubie model, the mapping from standard move notation
// to layer rotations, smooth frame-driven animation of slice turns, and the
// inference of moves from pointer drags.
//
// # Features
//
//   - Standard notation parsing (R L U D F B M E S, optionally primed)
//   - Frame-driven animation with a FIFO move queue
//   - Exact lattice snapping after every turn (no float drift)
//   - Drag gesture recognition against face normals
//   - Move history for inverse-replay reset
//
// # Quick Start
//
// Create an engine, queue moves, and drive it from a frame loop:
//
//	eng := twisty.NewEngine()
//
//	eng.OnMoveComplete(func(m twisty.Move) {
//	    fmt.Println("Completed:", m.Notation())
//	})
//
//	eng.Enqueue(twisty.R, 1)
//	eng.Enqueue(twisty.UPrime, 1)
//
//	for eng.Busy() {
//	    eng.Advance(16 * time.Millisecond) // once per rendered frame
//	}
//
// # Moves From Notation
//
// Moves can be parsed from standard notation strings:
//
//	moves, err := twisty.ParseMoves("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eng.EnqueueAll(moves, 1)
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	twisty.R      // Right layer clockwise
//	twisty.RPrime // Right layer counter-clockwise
//	// ... and similarly for L, U, D, F, B, M, E, S
//
// # Resetting
//
// The engine records completed moves. Replaying the inverse history returns
// every cubie to its home transform:
//
//	eng.EnqueueAll(eng.ResetSequence(), 4)
//	eng.ClearHistory()
//
// The engine is single-threaded by design: all methods must be called from
// the same event/frame loop that calls Advance.
package twisty
