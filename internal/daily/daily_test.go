package daily

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guessword/internal/db"
	"github.com/robalobadob/guessword/internal/words"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	assert.Equal(t, "2026-03-01", DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc)))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 5, 17, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 5, 17, 23, 59, 0, 0, time.UTC)

	a := WordIndex(DateKey(day), "salt", 100)
	assert.Equal(t, a, WordIndex(DateKey(later), "salt", 100), "same day, same word")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 100)
	assert.Equal(t, 0, WordIndex(DateKey(day), "salt", 0))
	assert.Equal(t, int(Seed("salt", "2026-05-17")%100), a)

	distinct := map[int]bool{}
	for d := 0; d < 30; d++ {
		distinct[WordIndex(DateKey(day.AddDate(0, 0, d)), "salt", 1000)] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestSeed(t *testing.T) {
	assert.Equal(t, Seed("salt", "2026-05-17"), Seed("salt", "2026-05-17"))
	assert.NotEqual(t, Seed("salt", "2026-05-17"), Seed("pepper", "2026-05-17"))
	assert.NotEqual(t, Seed("salt", "2026-05-17"), Seed("salt", "2026-05-18"))
}

func TestPick(t *testing.T) {
	ws := words.New(5, nil, strings.NewReader("alpha\nbravo\ncharl\n"), nil)
	now := time.Date(2026, 5, 17, 8, 0, 0, 0, time.UTC)

	date, idx, word, err := Pick(ws, now, "salt")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-17", date)
	want, _ := ws.CandidateAt(idx)
	assert.Equal(t, want, word)

	_, _, _, err = Pick(words.New(5, nil, nil, nil), now, "salt")
	assert.ErrorIs(t, err, words.ErrEmptyCandidateList)
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "daily.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(ctx, sqlDB))
	s := NewStore(sqlDB)

	played, err := s.AlreadyPlayed(ctx, "p1", "2026-05-17")
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "p1", Date: "2026-05-17", Attempts: 4, Won: true, ElapsedMs: 900}))
	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "p1", Date: "2026-05-17", Attempts: 1, Won: true, ElapsedMs: 1}))
	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "p2", Date: "2026-05-17", Attempts: 3, Won: true, ElapsedMs: 5000}))
	require.NoError(t, s.InsertResult(ctx, Result{OwnerID: "p3", Date: "2026-05-17", Attempts: 6, Won: false, ElapsedMs: 10}))

	played, err = s.AlreadyPlayed(ctx, "p1", "2026-05-17")
	require.NoError(t, err)
	assert.True(t, played)

	top, err := s.Leaderboard(ctx, "2026-05-17", 0)
	require.NoError(t, err)
	assert.Equal(t, []LBRow{
		{OwnerID: "p2", Attempts: 3, ElapsedMs: 5000},
		{OwnerID: "p1", Attempts: 4, ElapsedMs: 900},
	}, top)

	require.NoError(t, s.ClaimAnon(ctx, "p3", "user"))
	played, err = s.AlreadyPlayed(ctx, "user", "2026-05-17")
	require.NoError(t, err)
	assert.True(t, played)
}
