package prompt

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/createnv/log"
)

// inputModel asks for a single value. The default is shown as placeholder
// and taken when Enter is pressed on empty input.
type inputModel struct {
	ctxFunc func() context.Context
	logger  log.Logger
	input   textinput.Model
	label   string
	def     string
	value   string
	done    bool
	aborted bool
}

func newInputModel(
	ctx context.Context,
	logger log.Logger,
	st styles,
	label, def string,
) inputModel {
	ti := textinput.New()
	ti.Prompt = st.label.Render(label) + ": "
	ti.Placeholder = def
	ti.PlaceholderStyle = st.hint
	ti.Focus()

	return inputModel{
		ctxFunc: func() context.Context { return ctx },
		logger:  logger,
		input:   ti,
		label:   label,
		def:     def,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.logger.TraceContext(m.ctxFunc(), "prompt keypress",
			slog.String("label", m.label),
			slog.String("key", key.String()),
		)

		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true

			return m, tea.Quit

		case tea.KeyEnter:
			m.value = m.input.Value()
			if m.value == "" {
				m.value = m.def
			}

			m.done = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m inputModel) View() string {
	switch {
	case m.aborted:
		return ""
	case m.done:
		// Leave the answered prompt on screen.
		return m.input.Prompt + m.value + "\n"
	default:
		return m.input.View() + "\n"
	}
}
