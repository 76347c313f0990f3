package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guessword/internal/words"
)

const testWords = `smile
stole
miles
piano
spoil
stare
smell
theme
eerie
steel
speed
erase
allow
llama
crane
pilot
`

// testDict is a small store whose candidates equal its acceptance set.
func testDict() *words.Store {
	return words.New(5, nil, strings.NewReader(testWords), nil)
}

// newGame starts a deterministic classic 5x6 game.
func newGame(t *testing.T, target string) *Session {
	t.Helper()
	s, err := NewWithTarget(testDict(), DefaultConfig(), target)
	require.NoError(t, err)
	return s
}

// play types each word through the key channel and submits it.
func play(s *Session, guesses ...string) {
	for _, g := range guesses {
		for _, r := range g {
			s.HandleKey(string(r))
		}
		s.HandleKey(">")
	}
}

func freshGame(t *testing.T) *Session {
	return newGame(t, "SMILE")
}

// inProgressGame has two scored rows and one letter typed on the third.
func inProgressGame(t *testing.T) *Session {
	s := newGame(t, "SMILE")
	play(s, "STOLE", "MILES")
	s.HandleKey("S")
	return s
}

func wonGame(t *testing.T) *Session {
	s := newGame(t, "SMILE")
	play(s, "STOLE", "MILES", "SMILE")
	return s
}

func lostGame(t *testing.T) *Session {
	s := newGame(t, "SMILE")
	play(s, "PIANO", "STOLE", "SPOIL", "STARE", "MILES", "SMELL")
	return s
}

// complexGame exercises repeated letters in guess and target.
func complexGame(t *testing.T) *Session {
	s := newGame(t, "THEME")
	play(s, "EERIE", "STEEL", "THEME")
	return s
}

// feedbacks extracts the feedback column of a row.
func feedbacks(g Guess) []Feedback {
	out := make([]Feedback, len(g.Letters))
	for i, l := range g.Letters {
		out[i] = l.Feedback
	}
	return out
}
