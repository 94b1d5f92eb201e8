package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/createnv/lang"
	"github.com/ardnew/createnv/log"
)

// targetMode is the permission mode of a created environment file.
const targetMode fs.FileMode = 0o600

// Terminal is what a [Generator] needs from the human in front of it.
type Terminal interface {
	lang.Prompter
	Confirm(ctx context.Context, question string) (bool, error)
	Echo(msg string)
	Warning(msg string)
	Success(msg string)
	Error(msg string)
}

// Generator turns a parsed sample into an environment file.
type Generator struct {
	Target     string
	Parser     *lang.Parser
	Overwrite  bool
	UseDefault bool
	Terminal   Terminal
	Logger     log.Logger
}

// Run parses the sample, checks the target, resolves every group and writes
// the target once. Nothing is written if any step fails or the user keeps
// the existing target.
func (g *Generator) Run(ctx context.Context) error {
	groups, err := g.Parser.Parse(ctx)
	if err != nil {
		g.Terminal.Error(describe(err))

		return ErrParseSource.Wrap(err).
			With(slog.String("source", g.Parser.Source()))
	}

	ok, err := g.CanWrite(ctx)
	if err != nil {
		return err
	}

	if !ok {
		g.Logger.InfoContext(ctx, "target kept",
			slog.String("target", g.Target))

		return nil
	}

	lines, err := g.Contents(ctx, groups)
	if err != nil {
		return err
	}

	err = os.WriteFile(g.Target, []byte(strings.Join(lines, "\n")), targetMode)
	if err != nil {
		return ErrWriteTarget.Wrap(err).With(slog.String("target", g.Target))
	}

	g.Logger.DebugContext(ctx, "target written",
		slog.String("target", g.Target),
		slog.Int("group_count", len(groups)),
		slog.Int("line_count", len(lines)),
	)

	g.Terminal.Success(filepath.Base(g.Target) + " created!")

	return nil
}

// CanWrite reports whether the target may be written: it does not exist,
// overwriting was requested, or the user agrees to overwrite it.
func (g *Generator) CanWrite(ctx context.Context) (bool, error) {
	if g.Overwrite {
		return true, nil
	}

	_, err := os.Stat(g.Target)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}

	if err != nil {
		return false, ErrCheckTarget.Wrap(err).
			With(slog.String("target", g.Target))
	}

	g.Terminal.Warning(
		"There is an existing " + filepath.Base(g.Target) + " file.")

	ok, err := g.Terminal.Confirm(ctx, "Do you want to overwrite it?")
	if err != nil {
		return false, ErrCheckTarget.Wrap(err).
			With(slog.String("target", g.Target))
	}

	return ok, nil
}

// Contents resolves each group in order and returns the lines of the
// environment file: a title comment, an optional description comment, one
// NAME=value line per value and a blank line, for every group.
func (g *Generator) Contents(
	ctx context.Context,
	groups []*lang.Group,
) ([]string, error) {
	var lines []string

	for _, group := range groups {
		if group.ShouldEcho(g.UseDefault) {
			g.Terminal.Echo(group.String())
		}

		settings, err := group.Resolve(ctx, g.Terminal, g.UseDefault)
		if err != nil {
			return nil, ErrResolve.Wrap(err)
		}

		lines = append(lines, group.Header()...)
		for name, value := range settings.All() {
			lines = append(lines, name+"="+value)
		}

		lines = append(lines, "")
	}

	return lines, nil
}

// describe returns the message shown to the user for a parse failure.
func describe(err error) string {
	var pe *lang.ParseError
	if errors.As(err, &pe) {
		return pe.Error()
	}

	var le *lang.Error
	if errors.As(err, &le) && le.Unwrap() != nil {
		return le.Unwrap().Error() + "."
	}

	return err.Error()
}
