// internal/results/results.go
//
// Persistence of game outcomes, the engine's result sink.
//
// Every started game gets a row in `games`; FinishGame stamps the final
// status and attempt count. A player's record string (see internal/stats)
// is rebuilt from finished rows in finish order.

package results

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/robalobadob/guessword/internal/db"
	"github.com/robalobadob/guessword/internal/stats"
)

// Game is the row written when a game starts.
type Game struct {
	ID        string
	OwnerID   string
	Mode      string
	StartedAt time.Time
}

// GameRow is a history line.
type GameRow struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// Store writes and reads the games table.
type Store struct{ db *sql.DB }

func NewStore(sqlDB *sql.DB) *Store { return &Store{db: sqlDB} }

// StartGame inserts the owner row for a new game.
func (s *Store) StartGame(ctx context.Context, g Game) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, owner_id, mode, started_at, status, attempts)
		 VALUES (?,?,?,?,'in_progress',0)`,
		g.ID, g.OwnerID, g.Mode, g.StartedAt.UTC().Format(db.TimeLayout))
	return err
}

// FinishGame records the terminal status ("won" or "lost") and attempts used.
// Finishing an already finished game is a no-op.
func (s *Store) FinishGame(ctx context.Context, id, status string, attempts int, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE games SET status=?, attempts=?, finished_at=?
		 WHERE id=? AND finished_at IS NULL`,
		status, attempts, at.UTC().Format(db.TimeLayout), id)
	return err
}

// Record returns the owner's record string, oldest game first.
func (s *Store) Record(ctx context.Context, ownerID string) (string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, attempts FROM games
		 WHERE owner_id=? AND finished_at IS NOT NULL
		 ORDER BY finished_at ASC, rowid ASC`, ownerID)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var status string
		var attempts int
		if err := rows.Scan(&status, &attempts); err != nil {
			return "", err
		}
		b.WriteByte(stats.Outcome(status == "won", attempts))
	}
	return b.String(), rows.Err()
}

// RecentGames lists the owner's latest games, newest first.
func (s *Store) RecentGames(ctx context.Context, ownerID string, limit int) ([]GameRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, status, attempts, started_at, COALESCE(finished_at,'')
		 FROM games WHERE owner_id=? ORDER BY started_at DESC LIMIT ?`, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GameRow{}
	for rows.Next() {
		var gr GameRow
		if err := rows.Scan(&gr.ID, &gr.Mode, &gr.Status, &gr.Attempts, &gr.StartedAt, &gr.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, gr)
	}
	return out, rows.Err()
}

// ClaimAnon transfers anonymous games to a user account after login.
func (s *Store) ClaimAnon(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `UPDATE games SET owner_id=? WHERE owner_id=?`, userID, anonID)
	return err
}

// Statistics is Record followed by stats.Compute.
func (s *Store) Statistics(ctx context.Context, ownerID string, maxAttempts int) (stats.Statistics, error) {
	rec, err := s.Record(ctx, ownerID)
	if err != nil {
		return stats.Statistics{}, err
	}
	return stats.Compute(rec, maxAttempts), nil
}
