package daily

import (
	"context"
	"database/sql"
)

// Result is one player's finished daily game.
type Result struct {
	OwnerID   string `json:"ownerId"`
	Date      string `json:"date"`
	WordIndex int    `json:"wordIndex"`
	Attempts  int    `json:"attempts"`
	Won       bool   `json:"won"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Store persists daily results in the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether ownerID has a result for date.
func (s *Store) AlreadyPlayed(ctx context.Context, ownerID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE owner_id=? AND date=?`,
		ownerID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r; a second result for the same owner and date is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(owner_id, date, word_index, attempts, won, elapsed_ms)
		 VALUES(?,?,?,?,?,?)`,
		r.OwnerID, r.Date, r.WordIndex, r.Attempts, r.Won, r.ElapsedMs,
	)
	return err
}

// LBRow is one leaderboard line.
type LBRow struct {
	OwnerID   string `json:"ownerId"`
	Attempts  int    `json:"attempts"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard returns the winners of date: fewest attempts, then fastest.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, attempts, elapsed_ms
		 FROM daily_results
		 WHERE date=? AND won=1
		 ORDER BY attempts ASC, elapsed_ms ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.OwnerID, &r.Attempts, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnon moves an anonymous player's daily results to a user account.
// Results for dates the user already played stay with the anonymous ID.
func (s *Store) ClaimAnon(ctx context.Context, anonID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE OR IGNORE daily_results SET owner_id=? WHERE owner_id=?`, userID, anonID)
	return err
}
