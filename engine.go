package twisty

import (
	"fmt"
	"math"
	"time"
)

// Engine defaults.
const (
	// DefaultGap is the spacing between adjacent cubies; the lattice step
	// is 1 + DefaultGap.
	DefaultGap = 0.05

	// DefaultBaseSpeed is the angular speed of a layer turn in radians per
	// second before per-move speed multipliers.
	DefaultBaseSpeed = 5.0

	// completionEpsilon guards the quarter-turn completion test against
	// float step undershoot.
	completionEpsilon = 0.001
)

// QueuedMove is a move waiting in the engine's queue together with its
// animation speed multiplier.
type QueuedMove struct {
	Move  Move
	Speed float64
}

// Engine owns the 27 cubies and animates layer turns one at a time.
//
// It is a two-state machine: idle, or animating exactly one move. Moves are
// enqueued at any time and drained strictly in FIFO order; an enqueued move
// always eventually runs to completion, there is no cancellation.
//
// The engine is not goroutine-safe. Every method must be called from the
// single event/frame loop that drives Advance; no other synchronization
// exists or is needed.
type Engine struct {
	cubies []*Cubie
	grid   float64

	baseSpeed float64
	epsilon   float64

	queue   []QueuedMove
	current *QueuedMove
	piv     *pivot
	active  []int

	trackHistory bool
	history      []Move

	onComplete func(Move)
	onError    func(error)
}

// NewEngine creates an engine with all 27 cubies at their home transforms.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	grid := 1 + cfg.gap
	return &Engine{
		cubies:       newCubies(grid),
		grid:         grid,
		baseSpeed:    cfg.baseSpeed,
		epsilon:      cfg.epsilon,
		trackHistory: cfg.moveHistory,
	}
}

// GridStep returns the lattice step (1 + gap) between adjacent cubies.
func (e *Engine) GridStep() float64 {
	return e.grid
}

// Event callbacks

// OnMoveComplete sets a callback that fires exactly once per completed
// move, in completion order, carrying the original Move value.
func (e *Engine) OnMoveComplete(cb func(Move)) {
	e.onComplete = cb
}

// OnError sets a callback for invariant violations detected when a move
// starts, such as a slice that does not resolve to 9 cubies. The offending
// move is skipped; the queue keeps draining.
func (e *Engine) OnError(cb func(error)) {
	e.onError = cb
}

// Queueing

// Enqueue appends a move to the tail of the queue. A speed multiplier <= 0
// is treated as 1. Callable at any time, including mid-animation.
func (e *Engine) Enqueue(m Move, speed float64) {
	if speed <= 0 {
		speed = 1
	}
	e.queue = append(e.queue, QueuedMove{Move: m, Speed: speed})
}

// EnqueueAll appends a sequence of moves, all with the same speed
// multiplier, preserving order.
func (e *Engine) EnqueueAll(moves []Move, speed float64) {
	for _, m := range moves {
		e.Enqueue(m, speed)
	}
}

// EnqueueNotation parses a notation sequence and enqueues it at speed 1.
// Nothing is enqueued if any token is invalid.
func (e *Engine) EnqueueNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	e.EnqueueAll(moves, 1)
	return nil
}

// Busy reports whether a move is animating or waiting in the queue.
func (e *Engine) Busy() bool {
	return e.current != nil || len(e.queue) > 0
}

// Animating reports whether a move is currently mid-rotation.
func (e *Engine) Animating() bool {
	return e.current != nil
}

// Pending returns the number of moves waiting behind the current one.
func (e *Engine) Pending() int {
	return len(e.queue)
}

// Progress returns the fraction [0,1] of the current turn that has been
// animated, or 0 when idle.
func (e *Engine) Progress() float64 {
	if e.piv == nil {
		return 0
	}
	return math.Abs(e.piv.angle) / (math.Pi / 2)
}

// Advance drives the state machine by one frame of elapsed time. It is the
// only place animation state mutates: when idle it dequeues the next move,
// then applies at most one increment of angle progress. Completed moves
// snap to the lattice and fire the move-complete callback. With nothing
// queued, Advance does nothing.
func (e *Engine) Advance(delta time.Duration) {
	if e.current == nil && !e.dequeue() {
		return
	}
	e.step(delta)
}

// dequeue starts the next startable move, skipping any that fail the
// slice invariant, and reports whether one was started.
func (e *Engine) dequeue() bool {
	for len(e.queue) > 0 {
		qm := e.queue[0]
		e.queue = e.queue[1:]
		if err := e.startMove(qm); err != nil {
			if e.onError != nil {
				e.onError(err)
			}
			continue
		}
		return true
	}
	return false
}

// startMove resolves the affected slice and reparents its cubies onto a
// fresh pivot, preserving their world transforms.
func (e *Engine) startMove(qm QueuedMove) error {
	m := qm.Move
	if m.Slice < -1 || m.Slice > 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSlice, m.Slice)
	}

	ids := selectSlice(e.cubies, e.grid, m.Axis, m.Slice)
	if len(ids) != 9 {
		return fmt.Errorf("%w: %s layer %d resolved to %d", ErrSliceIncomplete, m.Axis, m.Slice, len(ids))
	}

	p := newPivot(m.Axis, m.Dir)
	for _, id := range ids {
		p.attach(e.cubies[id])
	}

	e.piv = p
	e.active = ids
	e.current = &qm
	return nil
}

// step advances the in-progress rotation by one linear increment, clamped
// to the remaining angle, and finishes the move once the quarter turn is
// within epsilon of complete.
func (e *Engine) step(delta time.Duration) {
	qm := e.current
	target := float64(qm.Move.Dir) * math.Pi / 2
	remaining := math.Abs(target - e.piv.angle)

	step := e.baseSpeed * qm.Speed * delta.Seconds()
	if step > remaining {
		step = remaining
	}
	e.piv.angle += float64(qm.Move.Dir) * step

	for _, id := range e.active {
		e.piv.apply(e.cubies[id])
	}

	if math.Abs(e.piv.angle) >= math.Pi/2-e.epsilon {
		e.finishMove()
	}
}

// finishMove snaps the active cubies back onto the shared lattice using
// the exact quarter turn, dissolves the pivot, records history, and emits
// the move-complete event.
func (e *Engine) finishMove() {
	for _, id := range e.active {
		e.piv.detach(e.cubies[id], e.grid)
	}

	m := e.current.Move
	e.piv = nil
	e.active = nil
	e.current = nil

	if e.trackHistory {
		e.history = append(e.history, m)
	}
	if e.onComplete != nil {
		e.onComplete(m)
	}
}

// State access

// Cubies returns a snapshot copy of all 27 cubies in id order.
func (e *Engine) Cubies() []Cubie {
	out := make([]Cubie, len(e.cubies))
	for i, c := range e.cubies {
		out[i] = *c
	}
	return out
}

// Cubie returns a snapshot of one cubie by id.
func (e *Engine) Cubie(id int) (Cubie, error) {
	if id < 0 || id >= len(e.cubies) {
		return Cubie{}, ErrCubieNotFound
	}
	return *e.cubies[id], nil
}

// Solved reports whether every cubie is back at its home lattice point
// with identity orientation. This is a registry check, not a solver.
func (e *Engine) Solved() bool {
	for _, c := range e.cubies {
		if !c.AtHome(e.grid) {
			return false
		}
	}
	return true
}

// History

// Moves returns the completed move history since creation or last clear.
func (e *Engine) Moves() []Move {
	out := make([]Move, len(e.history))
	copy(out, e.history)
	return out
}

// ClearHistory clears the move history.
func (e *Engine) ClearHistory() {
	e.history = e.history[:0]
}

// ResetSequence returns the moves that undo the recorded history: each
// completed move inverted, in reverse order. Enqueue the result (typically
// at an elevated speed) to replay the cube back to its starting state.
func (e *Engine) ResetSequence() []Move {
	return InverseSequence(e.history)
}
