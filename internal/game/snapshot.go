// internal/game/snapshot.go
//
// Read-only view of a session for presentation layers.
// Responsibilities:
//   - Copy rows, letters and keyboard colouring into plain JSON structs.
//   - Reveal the answer only once the game has ended.

package game

import (
	"slices"

	"github.com/samber/lo"
)

// LetterView is the JSON shape of one tile.
type LetterView struct {
	Letter   string   `json:"letter"`
	Feedback Feedback `json:"feedback"`
}

// RowView is the JSON shape of one attempt row.
type RowView struct {
	Letters []LetterView `json:"letters"`
	Status  RowStatus    `json:"status"`
}

// Snapshot is a read-only view of a session for presentation layers.
type Snapshot struct {
	GameID         string              `json:"gameId"`
	Status         Status              `json:"status"`
	WordLength     int                 `json:"wordLength"`
	MaxAttempts    int                 `json:"maxAttempts"`
	CurrentAttempt int                 `json:"currentAttempt"`
	Rows           []RowView           `json:"rows"`
	Keys           map[string]Feedback `json:"keys"`
	KeyOrder       []string            `json:"keyOrder"`
	Answer         string              `json:"answer,omitempty"`
}

// Snapshot captures the current state. The answer is only filled in once
// the game is over.
func (s *Session) Snapshot() Snapshot {
	rows := lo.Map(s.attempts, func(g Guess, _ int) RowView {
		return RowView{
			Letters: lo.Map(g.Letters, func(l GuessedLetter, _ int) LetterView {
				return LetterView{Letter: string(l.Letter), Feedback: l.Feedback}
			}),
			Status: g.Status,
		}
	})

	keys := lo.MapEntries(s.Keyboard(), func(r rune, f Feedback) (string, Feedback) {
		return string(r), f
	})
	order := lo.Keys(keys)
	slices.Sort(order)

	answer, _ := s.Answer()
	return Snapshot{
		GameID:         s.id,
		Status:         s.status,
		WordLength:     s.cfg.WordLength,
		MaxAttempts:    s.cfg.MaxAttempts,
		CurrentAttempt: s.current,
		Rows:           rows,
		Keys:           keys,
		KeyOrder:       order,
		Answer:         answer,
	}
}
