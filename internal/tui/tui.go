// Package tui provides a Bubble Tea terminal client for the guessing game.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessword/internal/game"
	"github.com/robalobadob/guessword/internal/results"
	"github.com/robalobadob/guessword/internal/stats"
)

// Recorder persists finished games and reads back statistics.
// *results.Store satisfies it.
type Recorder interface {
	StartGame(ctx context.Context, g results.Game) error
	FinishGame(ctx context.Context, id, status string, attempts int, at time.Time) error
	Statistics(ctx context.Context, ownerID string, maxAttempts int) (stats.Statistics, error)
}

// Model is the Bubble Tea model for the terminal client.
type Model struct {
	dict     game.Dictionary
	cfg      game.Config
	rec      Recorder // nil disables persistence
	owner    string
	answer   string // fixed target for the first game; empty picks at random
	now      func() time.Time
	sess     *game.Session
	stats    *stats.Statistics
	message  string
	width    int
	quitting bool
}

// Option tweaks a Model at construction.
type Option func(*Model)

// WithRecorder persists results under owner.
func WithRecorder(rec Recorder, owner string) Option {
	return func(m *Model) {
		m.rec = rec
		m.owner = owner
	}
}

// WithAnswer fixes the target of the first game.
func WithAnswer(answer string) Option {
	return func(m *Model) { m.answer = answer }
}

// recordedMsg carries the statistics read back after a game is recorded.
type recordedMsg struct {
	stats stats.Statistics
	err   error
}

// New creates a model and starts its first game.
func New(dict game.Dictionary, cfg game.Config, opts ...Option) (Model, error) {
	m := Model{dict: dict, cfg: cfg, now: time.Now, width: 80}
	for _, o := range opts {
		o(&m)
	}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the Bubble Tea program.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newGame replaces the session. The fixed answer is used once.
func (m *Model) newGame() error {
	var (
		sess *game.Session
		err  error
	)
	if m.answer != "" {
		sess, err = game.NewWithTarget(m.dict, m.cfg, m.answer)
		m.answer = ""
	} else {
		sess, err = game.New(m.dict, m.cfg)
	}
	if err != nil {
		return err
	}
	m.sess = sess
	m.stats = nil
	m.message = ""

	if m.rec != nil {
		if err := m.rec.StartGame(context.Background(), results.Game{
			ID:        sess.ID(),
			OwnerID:   m.owner,
			Mode:      "random",
			StartedAt: m.now(),
		}); err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID()).Msg("insert game row")
		}
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses, window resizes and recording results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case recordedMsg:
		if msg.err != nil {
			m.message = "could not load statistics"
			return m, nil
		}
		st := msg.stats
		m.stats = &st

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.NewGame):
			if err := m.newGame(); err != nil {
				m.message = err.Error()
			}
			return m, nil
		case key.Matches(msg, keys.Submit):
			return m.handleKey("enter")
		case key.Matches(msg, keys.Delete):
			return m.handleKey("backspace")
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

// handleKey feeds one key to the session and records the game when it ends.
func (m Model) handleKey(k string) (tea.Model, tea.Cmd) {
	if m.sess.Status().Terminal() {
		return m, nil
	}
	m.sess.HandleKey(k)

	m.message = ""
	if row := m.currentRow(); row.Status == game.RowInvalidWord {
		m.message = "Not in word list"
	}
	if m.sess.Status().Terminal() {
		return m, m.record()
	}
	return m, nil
}

// record writes the outcome and reads back statistics.
func (m Model) record() tea.Cmd {
	if m.rec == nil {
		return nil
	}
	rec, owner, sess, at := m.rec, m.owner, m.sess, m.now()
	maxAttempts := m.cfg.MaxAttempts
	return func() tea.Msg {
		ctx := context.Background()
		if err := rec.FinishGame(ctx, sess.ID(), string(sess.Status()), sess.AttemptsUsed(), at); err != nil {
			return recordedMsg{err: err}
		}
		st, err := rec.Statistics(ctx, owner, maxAttempts)
		return recordedMsg{stats: st, err: err}
	}
}

func (m Model) currentRow() game.Guess {
	rows := m.sess.Attempts()
	return rows[m.sess.CurrentAttempt()]
}

// View renders the board, keyboard and status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleTitle.Render("Guess The Word"))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.renderKeyboard())
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(styleMessage.Render(m.message))
		b.WriteString("\n")
	}
	if m.sess.Status().Terminal() {
		b.WriteString(m.renderResult())
	}
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(styleHelp.Render(keys.help()))
	return b.String()
}

func (m Model) renderBoard() string {
	rows := m.sess.Attempts()
	lines := make([]string, 0, m.cfg.MaxAttempts)
	for i := 0; i < m.cfg.MaxAttempts; i++ {
		cells := make([]string, m.cfg.WordLength)
		for j := range cells {
			letter, f := "", game.FeedbackUnknown
			if i < len(rows) && j < len(rows[i].Letters) {
				letter = string(rows[i].Letters[j].Letter)
				f = rows[i].Letters[j].Feedback
			}
			cells[j] = tile(letter, f)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func (m Model) renderKeyboard() string {
	lines := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		caps := make([]string, 0, len(row))
		for _, r := range row {
			caps = append(caps, keyCap(string(r), m.sess.FeedbackForKey(r)))
		}
		lines[i] = strings.Repeat(" ", i) + lipgloss.JoinHorizontal(lipgloss.Top, caps...)
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderResult shows the answer, share grid and statistics of a finished game.
func (m Model) renderResult() string {
	var b strings.Builder
	answer, _ := m.sess.Answer()
	if m.sess.Status() == game.StatusWon {
		fmt.Fprintf(&b, "Solved! The word was %s.\n\n", answer)
	} else {
		fmt.Fprintf(&b, "Out of attempts. The word was %s.\n\n", answer)
	}
	if share, ok := m.sess.ShareText(); ok {
		b.WriteString(share)
		b.WriteString("\n")
	}
	if m.stats != nil {
		b.WriteString(renderStats(*m.stats))
		b.WriteString("\n")
	}
	return b.String()
}

// renderStats draws the summary line and the win distribution.
func renderStats(st stats.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Played %d  Win %% %d  Streak %d  Max %d\n",
		st.GamesPlayed, st.PercentageWon, st.CurrentWinStreak, st.MaxWinStreak)
	top := 0
	for _, n := range st.WinDistribution {
		top = max(top, n)
	}
	for i, n := range st.WinDistribution {
		width := 1
		if top > 0 {
			width = max(1, n*20/top)
		}
		fmt.Fprintf(&b, "%d %s\n", i+1, styleBar.Width(width+2).Render(fmt.Sprint(n)))
	}
	return b.String()
}

// renderStatusBar produces a full-width line with the game state.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s", strings.ReplaceAll(string(m.sess.Status()), "_", " "))
	right := fmt.Sprintf("Attempt %d/%d ", min(m.sess.AttemptsUsed()+1, m.cfg.MaxAttempts), m.cfg.MaxAttempts)
	if m.sess.Status().Terminal() {
		right = fmt.Sprintf("Used %d/%d ", m.sess.AttemptsUsed(), m.cfg.MaxAttempts)
	}
	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return styleStatusBar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right) + "\n"
}
