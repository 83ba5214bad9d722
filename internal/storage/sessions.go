package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session represents a play session in the database.
type Session struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	Scramble  *string
	Solved    bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished, recording whether the cube was solved.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ?, solved = ? WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), boolToInt(solved), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check session update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}

	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, scramble_text, solved
		FROM sessions WHERE session_id = ?
	`, sessionID)
	return scanSession(row)
}

// GetByPrefix retrieves a session whose ID starts with the given prefix.
// Returns an error if the prefix is ambiguous.
func (r *SessionRepository) GetByPrefix(prefix string) (*Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, scramble_text, solved
		FROM sessions WHERE session_id LIKE ? ORDER BY started_at
	`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var matches []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, s)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matches %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("prefix %q matches %d sessions", prefix, len(matches))
	}
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, scramble_text, solved
		FROM sessions ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}

	return sessions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt sql.NullString
	var scramble sql.NullString
	var solved int

	if err := row.Scan(&s.SessionID, &startedAt, &endedAt, &scramble, &solved); err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	t, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session start time: %w", err)
	}
	s.StartedAt = t

	if endedAt.Valid {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(endedAt.String))
		if err != nil {
			return nil, fmt.Errorf("failed to parse session end time: %w", err)
		}
		s.EndedAt = &t
	}
	if scramble.Valid {
		s.Scramble = &scramble.String
	}
	s.Solved = solved != 0

	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
