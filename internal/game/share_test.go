package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareText_Won(t *testing.T) {
	text, ok := wonGame(t).ShareText()
	require.True(t, ok)
	assert.Equal(t, "Guess The Word 3/6\n\n"+
		"🟩⬛⬛🟩🟩\n"+
		"🟨🟨🟨🟨🟨\n"+
		"🟩🟩🟩🟩🟩\n", text)
}

func TestShareText_Lost(t *testing.T) {
	text, ok := lostGame(t).ShareText()
	require.True(t, ok)
	assert.Contains(t, text, "Guess The Word X/6\n\n")
	assert.Equal(t, "🟩🟩🟨🟩⬛\n", text[len(text)-len("🟩🟩🟨🟩⬛\n"):])
}

func TestShareText_RunningGame(t *testing.T) {
	_, ok := inProgressGame(t).ShareText()
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	snap := inProgressGame(t).Snapshot()
	assert.Equal(t, StatusInProgress, snap.Status)
	assert.Equal(t, 2, snap.CurrentAttempt)
	assert.Len(t, snap.Rows, 3)
	assert.Equal(t, "S", snap.Rows[2].Letters[0].Letter)
	assert.Empty(t, snap.Answer)
	assert.Equal(t, []string{"E", "I", "L", "M", "O", "S", "T"}, snap.KeyOrder)
	assert.Equal(t, FeedbackInPosition, snap.Keys["S"])

	won := wonGame(t).Snapshot()
	assert.Equal(t, "SMILE", won.Answer)
}
