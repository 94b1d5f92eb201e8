package prompt

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/createnv/log"
)

// confirmSuffix marks "no" as the answer taken on a bare Enter.
const confirmSuffix = " [y/N]: "

// confirmModel asks a yes/no question.
type confirmModel struct {
	ctxFunc  func() context.Context
	logger   log.Logger
	question string
	st       styles
	answer   bool
	done     bool
	aborted  bool
}

func newConfirmModel(
	ctx context.Context,
	logger log.Logger,
	st styles,
	question string,
) confirmModel {
	return confirmModel{
		ctxFunc:  func() context.Context { return ctx },
		logger:   logger,
		question: question,
		st:       st,
	}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.logger.TraceContext(m.ctxFunc(), "confirm keypress",
		slog.String("key", key.String()),
	)

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true

		return m, tea.Quit

	case tea.KeyEnter:
		m.done = true

		return m, tea.Quit

	case tea.KeyRunes:
		if answer, ok := parseAnswer(string(key.Runes)); ok {
			m.answer, m.done = answer, true

			return m, tea.Quit
		}
	}

	return m, nil
}

func (m confirmModel) View() string {
	line := m.st.label.Render(m.question) + confirmSuffix

	switch {
	case m.aborted:
		return ""
	case m.done && m.answer:
		return line + "y\n"
	case m.done:
		return line + "n\n"
	default:
		return line
	}
}

// parseAnswer reads a yes/no answer. An empty answer is "no".
func parseAnswer(s string) (answer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "", "n", "no":
		return false, true
	default:
		return false, false
	}
}
