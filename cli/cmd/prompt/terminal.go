package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/createnv/log"
)

// Terminal asks the user for values and prints status lines.
// It implements lang.Prompter.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	lines       *bufio.Reader
	interactive bool
	st          styles
	logger      log.Logger
}

// Option configures a [Terminal].
type Option func(*Terminal)

// WithInteractive forces interactive (bubbletea) or line-oriented prompts
// instead of detecting a terminal on the input.
func WithInteractive(interactive bool) Option {
	return func(t *Terminal) { t.interactive = interactive }
}

// WithLogger sets the logger that receives prompt traces.
func WithLogger(logger log.Logger) Option {
	return func(t *Terminal) { t.logger = logger }
}

// New returns a Terminal reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:          in,
		out:         out,
		lines:       bufio.NewReader(in),
		interactive: isTerminal(in),
		st:          newStyles(lipgloss.NewRenderer(out)),
		logger:      log.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Stdio returns a Terminal on the process's standard input and output.
func Stdio(opts ...Option) *Terminal {
	return New(os.Stdin, os.Stdout, opts...)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive reports whether prompts run as terminal programs.
func (t *Terminal) Interactive() bool { return t.interactive }

// Prompt asks for a value labeled label. An empty answer yields def.
func (t *Terminal) Prompt(
	ctx context.Context,
	label, def string,
) (string, error) {
	t.logger.TraceContext(ctx, "prompt",
		slog.String("label", label),
		slog.Bool("has_default", def != ""),
		slog.Bool("interactive", t.interactive),
	)

	if t.interactive {
		final, err := t.run(ctx, newInputModel(ctx, t.logger, t.st, label, def))
		if err != nil {
			return "", err
		}

		m := final.(inputModel)
		if m.aborted {
			return "", ErrInterrupted
		}

		return m.value, nil
	}

	text := label + ": "
	if def != "" {
		text = label + " [" + def + "]: "
	}

	answer, err := t.readLine(ctx, text)
	if err != nil {
		return "", err
	}

	if answer == "" {
		return def, nil
	}

	return answer, nil
}

// Confirm asks a yes/no question. The answer defaults to no.
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	t.logger.TraceContext(ctx, "confirm",
		slog.String("question", question),
		slog.Bool("interactive", t.interactive),
	)

	if t.interactive {
		final, err := t.run(ctx, newConfirmModel(ctx, t.logger, t.st, question))
		if err != nil {
			return false, err
		}

		m := final.(confirmModel)
		if m.aborted {
			return false, ErrInterrupted
		}

		return m.answer, nil
	}

	for {
		answer, err := t.readLine(ctx, question+confirmSuffix)
		if err != nil {
			return false, err
		}

		if yes, ok := parseAnswer(answer); ok {
			return yes, nil
		}

		t.Error("Error: invalid input")
	}
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Join(ErrInterrupted, ctx.Err())
		}

		return nil, err
	}

	return final, nil
}

// readLine writes text and reads one line, without its line ending.
func (t *Terminal) readLine(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Join(ErrInterrupted, err)
	}

	fmt.Fprint(t.out, t.st.label.Render(text))

	line, err := t.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(t.out)

		if errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Echo writes msg unstyled.
func (t *Terminal) Echo(msg string) { fmt.Fprintln(t.out, msg) }

// Warning writes msg in yellow.
func (t *Terminal) Warning(msg string) { t.println(t.st.warning, msg) }

// Success writes msg in green.
func (t *Terminal) Success(msg string) { t.println(t.st.success, msg) }

// Error writes msg in red.
func (t *Terminal) Error(msg string) { t.println(t.st.failure, msg) }

// println renders each line of msg separately, since lipgloss pads the
// lines of a multi-line block to a common width.
func (t *Terminal) println(style lipgloss.Style, msg string) {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}

	fmt.Fprintln(t.out, strings.Join(lines, "\n"))
}
