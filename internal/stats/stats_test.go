package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, byte('L'), Outcome(false, 6))
	assert.Equal(t, byte('3'), Outcome(true, 3))
	assert.Equal(t, byte('1'), Outcome(true, 0))
	assert.Equal(t, byte('9'), Outcome(true, 12))
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   Statistics
	}{
		{
			name:   "empty record",
			record: "",
			want:   Statistics{WinDistribution: []int{0, 0, 0, 0, 0, 0}},
		},
		{
			name:   "all wins",
			record: "345",
			want: Statistics{
				GamesPlayed: 3, GamesWon: 3, PercentageWon: 100,
				CurrentWinStreak: 3, MaxWinStreak: 3,
				WinDistribution: []int{0, 0, 1, 1, 1, 0},
			},
		},
		{
			name:   "longest streak before a loss is kept",
			record: "1234L5",
			want: Statistics{
				GamesPlayed: 6, GamesWon: 5, PercentageWon: 83,
				CurrentWinStreak: 1, MaxWinStreak: 4,
				WinDistribution: []int{1, 1, 1, 1, 1, 0},
			},
		},
		{
			name:   "ends with a loss",
			record: "66LL",
			want: Statistics{
				GamesPlayed: 4, GamesWon: 2, PercentageWon: 50,
				CurrentWinStreak: 0, MaxWinStreak: 2,
				WinDistribution: []int{0, 0, 0, 0, 0, 2},
			},
		},
		{
			name:   "rounding",
			record: "3LL",
			want: Statistics{
				GamesPlayed: 3, GamesWon: 1, PercentageWon: 33,
				CurrentWinStreak: 0, MaxWinStreak: 1,
				WinDistribution: []int{0, 0, 1, 0, 0, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.record, 6))
		})
	}
}

func TestCompute_DistributionIgnoresOutOfRange(t *testing.T) {
	st := Compute("29", 3)
	assert.Equal(t, []int{0, 1, 0}, st.WinDistribution)
	assert.Equal(t, 2, st.GamesWon)
}
