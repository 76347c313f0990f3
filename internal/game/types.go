// internal/game/types.go
//
// Core type definitions for the guessing engine.
// Defines:
//   - Feedback: per-letter result of a scored guess.
//   - GuessedLetter / Guess: one letter and one attempt row.
//   - RowStatus / Status: row and session state machines.
//   - Config: word length and attempt limit.

package game

import "strings"

// Feedback represents the evaluation result for a single letter.
// Possible values:
//   - "unknown":         not yet scored.
//   - "in_position":     letter matches the target at the same index.
//   - "not_in_position": letter is in the target elsewhere (duplicate limits applied).
//   - "not_in_word":     letter is not in the target, or all its occurrences are used up.
type Feedback string

const (
	FeedbackUnknown       Feedback = "unknown"
	FeedbackInPosition    Feedback = "in_position"
	FeedbackNotInPosition Feedback = "not_in_position"
	FeedbackNotInWord     Feedback = "not_in_word"
)

// rank orders feedback for keyboard aggregation.
func (f Feedback) rank() int {
	switch f {
	case FeedbackInPosition:
		return 3
	case FeedbackNotInPosition:
		return 2
	case FeedbackNotInWord:
		return 1
	default:
		return 0
	}
}

// RowStatus is the lifecycle of a single attempt row.
type RowStatus string

const (
	RowEditing     RowStatus = "editing"
	RowInvalidWord RowStatus = "invalid_word"
	RowComplete    RowStatus = "complete"
)

// Status is the session state machine: new → in_progress → won | lost.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether no further input is accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// GuessedLetter is one typed letter and, once the row is submitted, its feedback.
type GuessedLetter struct {
	Letter   rune
	Feedback Feedback
}

// Guess is one attempt row. Letters are pushed and popped at the tail only.
type Guess struct {
	Letters []GuessedLetter
	Status  RowStatus
}

// Word assembles the row's letters into a string.
func (g Guess) Word() string {
	var b strings.Builder
	for _, l := range g.Letters {
		b.WriteRune(l.Letter)
	}
	return b.String()
}

// Config holds the board dimensions.
type Config struct {
	WordLength  int // letters per word (typically 5)
	MaxAttempts int // attempts allowed (typically 6)
}

// DefaultConfig is the classic 5x6 board.
func DefaultConfig() Config {
	return Config{WordLength: defaultCols, MaxAttempts: defaultRows}
}
