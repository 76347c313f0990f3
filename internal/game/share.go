// internal/game/share.go
//
// Spoiler-free result grid of a finished game.
// Responsibilities:
//   - Map per-letter feedback to the square symbols.
//   - Render "<attempts>/<max>" (or "X/<max>" on a loss) followed by one line per row.

package game

import (
	"fmt"
	"strings"
)

const shareTitle = "Guess The Word"

// shareSymbol maps feedback onto the share grid.
func shareSymbol(f Feedback) string {
	switch f {
	case FeedbackInPosition:
		return "🟩"
	case FeedbackNotInPosition:
		return "🟨"
	default:
		return "⬛"
	}
}

// ShareText renders the spoiler-free result grid of a finished game:
//
//	Guess The Word 3/6
//
//	⬛🟨⬛⬛🟩
//	🟨🟨🟨⬛⬛
//	🟩🟩🟩🟩🟩
//
// The count reads "X" on a loss. ok is false while the game is running.
func (s *Session) ShareText() (text string, ok bool) {
	if !s.status.Terminal() {
		return "", false
	}
	count := "X"
	if s.status == StatusWon {
		count = fmt.Sprint(s.AttemptsUsed())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s/%d\n\n", shareTitle, count, s.cfg.MaxAttempts)
	for _, row := range s.attempts {
		if row.Status != RowComplete {
			continue
		}
		for _, l := range row.Letters {
			b.WriteString(shareSymbol(l.Feedback))
		}
		b.WriteByte('\n')
	}
	return b.String(), true
}
