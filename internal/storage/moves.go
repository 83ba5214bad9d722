package storage

import (
	"database/sql"
	"fmt"

	"github.com/twistylab/twisty"
)

// MoveRecord represents a completed move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Notation  string
	Axis      string
	Slice     int
	Direction int
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create records a completed move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, move twisty.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, notation, axis, slice, direction)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, tsMs, move.Notation(), move.Axis.String(), move.Slice, int(move.Dir))

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch records multiple moves in a single transaction, with the
// given millisecond timestamps (one per move).
func (r *MoveRepository) CreateBatch(sessionID string, moves []twisty.Move, tsMs []int64, startIndex int) error {
	if len(moves) != len(tsMs) {
		return fmt.Errorf("moves and timestamps length mismatch: %d vs %d", len(moves), len(tsMs))
	}

	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, notation, axis, slice, direction)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, tsMs[i], move.Notation(), move.Axis.String(), move.Slice, int(move.Dir))
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in move-index order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, notation, axis, slice, direction
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Notation, &m.Axis, &m.Slice, &m.Direction)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts MoveRecords back into engine moves via their notation.
func ToMoves(records []MoveRecord) ([]twisty.Move, error) {
	moves := make([]twisty.Move, len(records))
	for i, r := range records {
		m, err := twisty.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d has invalid notation %q: %w", r.MoveIndex, r.Notation, err)
		}
		moves[i] = m
	}
	return moves, nil
}
