package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guessword/internal/db"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(context.Background(), sqlDB))
	return NewStore(sqlDB)
}

func TestRecordFollowsFinishOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	finish := []struct {
		id       string
		status   string
		attempts int
	}{
		{"g1", "won", 3},
		{"g2", "lost", 6},
		{"g3", "won", 1},
	}
	for i, f := range finish {
		require.NoError(t, s.StartGame(ctx, Game{ID: f.id, OwnerID: "p1", Mode: "random", StartedAt: base}))
		require.NoError(t, s.FinishGame(ctx, f.id, f.status, f.attempts, base.Add(time.Duration(i)*time.Minute)))
	}
	// Unfinished and foreign games are not part of the record.
	require.NoError(t, s.StartGame(ctx, Game{ID: "g4", OwnerID: "p1", Mode: "random", StartedAt: base}))
	require.NoError(t, s.StartGame(ctx, Game{ID: "x1", OwnerID: "p2", Mode: "daily", StartedAt: base}))
	require.NoError(t, s.FinishGame(ctx, "x1", "won", 2, base))

	rec, err := s.Record(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "3L1", rec)

	st, err := s.Statistics(ctx, "p1", 6)
	require.NoError(t, err)
	assert.Equal(t, 3, st.GamesPlayed)
	assert.Equal(t, 2, st.GamesWon)
	assert.Equal(t, 1, st.CurrentWinStreak)
}

func TestFinishGameOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	now := time.Now()

	require.NoError(t, s.StartGame(ctx, Game{ID: "g1", OwnerID: "p1", Mode: "random", StartedAt: now}))
	require.NoError(t, s.FinishGame(ctx, "g1", "won", 2, now))
	require.NoError(t, s.FinishGame(ctx, "g1", "lost", 6, now))

	rec, err := s.Record(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2", rec)
}

func TestRecentGamesAndClaim(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.StartGame(ctx, Game{ID: "a", OwnerID: "anon", Mode: "random", StartedAt: base}))
	require.NoError(t, s.StartGame(ctx, Game{ID: "b", OwnerID: "anon", Mode: "daily", StartedAt: base.Add(time.Hour)}))
	require.NoError(t, s.FinishGame(ctx, "a", "lost", 6, base.Add(time.Minute)))

	require.NoError(t, s.ClaimAnon(ctx, "anon", "user"))
	require.NoError(t, s.ClaimAnon(ctx, "", "user"))

	games, err := s.RecentGames(ctx, "user", 0)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "b", games[0].ID)
	assert.Equal(t, "in_progress", games[0].Status)
	assert.Empty(t, games[0].FinishedAt)
	assert.Equal(t, "lost", games[1].Status)
	assert.Equal(t, 6, games[1].Attempts)

	left, err := s.RecentGames(ctx, "anon", 10)
	require.NoError(t, err)
	assert.Empty(t, left)
}
