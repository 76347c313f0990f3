// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create sessions with a random or fixed target word.
//   - Apply keystrokes: append letter, delete letter, submit guess.
//   - Score guesses using the two-pass, duplicate-aware algorithm.
//   - Track state transitions: new → in_progress → won/lost.
//
// Notes:
//   - The acceptance set and target selection come from a Dictionary
//     (normally *words.Store).
//   - Out-of-range operations are silent no-ops, like a keyboard that
//     ignores impossible keystrokes. Unknown words are a row state, not an error.
//   - A Session performs no locking; callers serialize operations per session.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultRows = 6
	defaultCols = 5
)

var (
	// ErrInvalidConfig is returned for non-positive board dimensions.
	ErrInvalidConfig = errors.New("game: word length and max attempts must be positive")
	// ErrTargetLength is returned when a fixed target does not match the word length.
	ErrTargetLength = errors.New("game: target length does not match word length")
)

// Dictionary is what a session needs from the word store.
type Dictionary interface {
	IsAcceptable(word string) bool
	PickRandomTarget() (string, error)
}

// Session holds the state of a single game.
type Session struct {
	id       string
	cfg      Config
	dict     Dictionary
	target   []rune  // uppercase
	attempts []Guess // append-only; the last row is the one being edited
	current  int     // index into attempts
	status   Status
}

// New starts a session with a target picked at random from dict.
// It fails (wrapping words.ErrEmptyCandidateList) when dict has no candidates.
func New(dict Dictionary, cfg Config) (*Session, error) {
	if cfg.WordLength <= 0 || cfg.MaxAttempts <= 0 {
		return nil, ErrInvalidConfig
	}
	target, err := dict.PickRandomTarget()
	if err != nil {
		return nil, fmt.Errorf("game: pick target: %w", err)
	}
	return NewWithTarget(dict, cfg, target)
}

// NewWithTarget starts a session with a fixed target (daily games, tests).
func NewWithTarget(dict Dictionary, cfg Config, target string) (*Session, error) {
	if cfg.WordLength <= 0 || cfg.MaxAttempts <= 0 {
		return nil, ErrInvalidConfig
	}
	target = strings.ToUpper(strings.TrimSpace(target))
	if utf8.RuneCountInString(target) != cfg.WordLength {
		return nil, ErrTargetLength
	}
	return &Session{
		id:       randomID(),
		cfg:      cfg,
		dict:     dict,
		target:   []rune(target),
		attempts: []Guess{{Status: RowEditing}},
		status:   StatusNew,
	}, nil
}

// begin promotes a fresh session on its first keystroke and reports
// whether the session still accepts input.
func (s *Session) begin() bool {
	if s.status == StatusNew {
		s.status = StatusInProgress
	}
	return s.status == StatusInProgress
}

// AppendLetter pushes r onto the current row.
// Ignored for non-letters, full rows, rows awaiting correction and finished games.
func (s *Session) AppendLetter(r rune) {
	if !s.begin() || !unicode.IsLetter(r) {
		return
	}
	row := &s.attempts[s.current]
	if row.Status != RowEditing || len(row.Letters) >= s.cfg.WordLength {
		return
	}
	row.Letters = append(row.Letters, GuessedLetter{Letter: unicode.ToUpper(r), Feedback: FeedbackUnknown})
}

// DeleteLastLetter pops the last letter of the current row.
// A row rejected as an unknown word becomes editable again.
func (s *Session) DeleteLastLetter() {
	if !s.begin() {
		return
	}
	row := &s.attempts[s.current]
	if row.Status == RowComplete || len(row.Letters) == 0 {
		return
	}
	row.Letters = row.Letters[:len(row.Letters)-1]
	row.Status = RowEditing
}

// SubmitGuess evaluates the current row once it holds a full word.
//
// State transitions:
//   - Unknown word → row becomes invalid_word; nothing else changes.
//   - Exact match  → status won; no new row.
//   - Last attempt → status lost.
//   - Otherwise    → a new empty row is appended.
func (s *Session) SubmitGuess() {
	if !s.begin() {
		return
	}
	row := &s.attempts[s.current]
	if row.Status == RowComplete || len(row.Letters) != s.cfg.WordLength {
		return
	}

	word := row.Word()
	if !s.dict.IsAcceptable(word) {
		row.Status = RowInvalidWord
		return
	}

	row.Status = RowComplete
	guess := make([]rune, len(row.Letters))
	for i, l := range row.Letters {
		guess[i] = l.Letter
	}
	for i, f := range scoreRunes(s.target, guess) {
		row.Letters[i].Feedback = f
	}

	switch {
	case word == string(s.target):
		s.status = StatusWon
	case s.current >= s.cfg.MaxAttempts-1:
		s.status = StatusLost
	default:
		s.attempts = append(s.attempts, Guess{Status: RowEditing})
		s.current++
	}
}

// HandleKey is the input channel for presentation layers.
// A single letter appends; "<", "backspace" and "delete" delete;
// ">" and "enter" submit. Anything else is ignored.
func (s *Session) HandleKey(key string) {
	switch strings.ToLower(key) {
	case "<", "backspace", "delete":
		s.DeleteLastLetter()
	case ">", "enter":
		s.SubmitGuess()
	default:
		if utf8.RuneCountInString(key) == 1 {
			r, _ := utf8.DecodeRuneInString(key)
			s.AppendLetter(r)
		}
	}
}

// SubmitWord clears the current row, types word and submits it.
// Used by callers that send whole words instead of keystrokes.
func (s *Session) SubmitWord(word string) {
	if s.status.Terminal() {
		return
	}
	for len(s.attempts[s.current].Letters) > 0 {
		s.DeleteLastLetter()
	}
	for _, r := range strings.TrimSpace(word) {
		s.AppendLetter(r)
	}
	s.SubmitGuess()
}

// Score compares guess against target and returns one Feedback per guess letter.
// Comparison is case-insensitive. Mismatched lengths score every letter unknown.
func Score(target, guess string) []Feedback {
	t := []rune(strings.ToUpper(target))
	g := []rune(strings.ToUpper(guess))
	if len(t) != len(g) {
		out := make([]Feedback, len(g))
		for i := range out {
			out[i] = FeedbackUnknown
		}
		return out
	}
	return scoreRunes(t, g)
}

// scoreRunes implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches in_position.
//   - Count the remaining (non-matched) target letters.
//
// Pass 2:
//   - For each unmatched guess letter: if the letter has a remaining count,
//     mark not_in_position and decrement; otherwise mark not_in_word.
//
// Exact matches consume their target letter first, so a repeated guess letter
// never earns more credit than the target has occurrences.
func scoreRunes(target, guess []rune) []Feedback {
	n := len(guess)
	res := make([]Feedback, n)
	remaining := make(map[rune]int, n)

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = FeedbackInPosition
		} else {
			res[i] = FeedbackUnknown
			remaining[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] != FeedbackUnknown {
			continue
		}
		if remaining[guess[i]] > 0 {
			res[i] = FeedbackNotInPosition
			remaining[guess[i]]--
		} else {
			res[i] = FeedbackNotInWord
		}
	}
	return res
}

// FeedbackForKey returns the best feedback r has received in any completed row,
// with in_position > not_in_position > not_in_word > unknown.
func (s *Session) FeedbackForKey(r rune) Feedback {
	r = unicode.ToUpper(r)
	best := FeedbackUnknown
	for _, row := range s.attempts {
		if row.Status != RowComplete {
			continue
		}
		for _, l := range row.Letters {
			if l.Letter == r && l.Feedback.rank() > best.rank() {
				best = l.Feedback
			}
		}
	}
	return best
}

// Keyboard returns FeedbackForKey for every letter used in a completed row.
func (s *Session) Keyboard() map[rune]Feedback {
	out := make(map[rune]Feedback)
	for _, row := range s.attempts {
		if row.Status != RowComplete {
			continue
		}
		for _, l := range row.Letters {
			if _, ok := out[l.Letter]; !ok {
				out[l.Letter] = s.FeedbackForKey(l.Letter)
			}
		}
	}
	return out
}

// ID is the session identifier used by stores.
func (s *Session) ID() string { return s.id }

// Config reports the board dimensions.
func (s *Session) Config() Config { return s.cfg }

// Status reports the session state.
func (s *Session) Status() Status { return s.status }

// CurrentAttempt is the index of the row being edited (or just evaluated).
func (s *Session) CurrentAttempt() int { return s.current }

// Attempts returns a deep copy of all rows.
func (s *Session) Attempts() []Guess {
	out := make([]Guess, len(s.attempts))
	for i, g := range s.attempts {
		out[i] = Guess{
			Letters: append([]GuessedLetter(nil), g.Letters...),
			Status:  g.Status,
		}
	}
	return out
}

// AttemptsUsed counts completed rows.
func (s *Session) AttemptsUsed() int {
	n := 0
	for _, g := range s.attempts {
		if g.Status == RowComplete {
			n++
		}
	}
	return n
}

// Answer reveals the target once the game is over.
func (s *Session) Answer() (string, bool) {
	if !s.status.Terminal() {
		return "", false
	}
	return string(s.target), true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
