package twisty

import "strings"

// Direction is the rotation sense about a move's axis, following the
// right-hand rule: CCW (+1) rotates counter-clockwise when viewed from the
// positive end of the axis, CW (-1) clockwise.
type Direction int

const (
	CCW Direction = 1
	CW  Direction = -1
)

// Move represents a single quarter-turn of one layer: which axis the layer
// rotates about, which of the three layers along that axis, and the
// rotation sense. A Move is an immutable value.
type Move struct {
	Axis  Axis      // Rotation axis
	Slice int       // Layer along the axis: -1, 0 or 1
	Dir   Direction // Rotation sense, one quarter turn
}

// baseMoves maps notation letters to their unprimed moves. The direction
// signs encode the standard convention that R, U and F turn their layer
// clockwise as seen by someone looking at that face.
var baseMoves = map[byte]Move{
	'R': {AxisX, 1, CW},
	'L': {AxisX, -1, CCW},
	'U': {AxisY, 1, CW},
	'D': {AxisY, -1, CCW},
	'F': {AxisZ, 1, CW},
	'B': {AxisZ, -1, CCW},
	'M': {AxisX, 0, CCW},
	'E': {AxisY, 0, CCW},
	'S': {AxisZ, 0, CW},
}

// notationLetters is a stable order for reverse lookup.
var notationLetters = []byte{'R', 'L', 'U', 'D', 'F', 'B', 'M', 'E', 'S'}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', M, E'
func (m Move) Notation() string {
	for _, letter := range notationLetters {
		base := baseMoves[letter]
		if base.Axis != m.Axis || base.Slice != m.Slice {
			continue
		}
		if base.Dir == m.Dir {
			return string(letter)
		}
		return string(letter) + "'"
	}
	return "?"
}

// Inverse returns the inverse of this move. R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	m.Dir = -m.Dir
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', U, M'
// Returns ErrInvalidNotation if the token is not one of the 18 legal
// quarter-turn moves. Unknown tokens are an error, never a default move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	move, ok := baseMoves[letter]
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			move.Dir = -move.Dir
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return move, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Any invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
