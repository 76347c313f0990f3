// internal/stats/stats.go
//
// Player statistics derived from a game record.
//
// A record is a string with one character per finished game, oldest first:
//   '1'..'9' = won in that many attempts
//   'L'      = lost

package stats

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

// Loss marks a lost game in a record.
const Loss = 'L'

// Statistics summarizes a record.
type Statistics struct {
	GamesPlayed      int   `json:"gamesPlayed"`
	GamesWon         int   `json:"gamesWon"`
	PercentageWon    int   `json:"percentageWon"`
	CurrentWinStreak int   `json:"currentWinStreak"`
	MaxWinStreak     int   `json:"maxWinStreak"`
	WinDistribution  []int `json:"winDistribution"` // index i = wins in i+1 attempts
}

// Outcome encodes a finished game as a record character.
// Attempt counts above 9 are clamped.
func Outcome(won bool, attempts int) byte {
	if !won {
		return Loss
	}
	if attempts < 1 {
		attempts = 1
	}
	if attempts > 9 {
		attempts = 9
	}
	return byte('0' + attempts)
}

// Compute derives statistics from record for a board of maxAttempts rows.
func Compute(record string, maxAttempts int) Statistics {
	games := []byte(record)
	won := func(c byte) bool { return c != Loss }

	st := Statistics{
		GamesPlayed:     len(games),
		GamesWon:        lo.CountBy(games, won),
		WinDistribution: make([]int, maxAttempts),
	}
	if st.GamesPlayed > 0 {
		st.PercentageWon = int(math.Round(float64(st.GamesWon) / float64(st.GamesPlayed) * 100))
	}

	if i := strings.LastIndexByte(record, Loss); i >= 0 {
		st.CurrentWinStreak = len(record) - i - 1
	} else {
		st.CurrentWinStreak = len(record)
	}

	run := 0
	for _, c := range games {
		if !won(c) {
			run = 0
			continue
		}
		run++
		st.MaxWinStreak = max(st.MaxWinStreak, run)

		if n := int(c - '0'); n >= 1 && n <= maxAttempts {
			st.WinDistribution[n-1]++
		}
	}
	return st
}
