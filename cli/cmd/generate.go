package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/createnv/cli/cmd/prompt"
	"github.com/ardnew/createnv/lang"
	"github.com/ardnew/createnv/log"
)

// Generate creates an environment file from a commented sample.
type Generate struct {
	Target               string `default:".env"        help:"Environment file to create."                              short:"t"`
	Source               string `default:".env.sample" help:"Commented sample to read."                                short:"s"`
	Overwrite            bool   `                      help:"Overwrite the target without asking."                    short:"o"`
	UseDefault           bool   `                      help:"Take defaults without prompting where there is one."     short:"d"`
	CharsForRandomString string `                      help:"Characters random values are drawn from."                short:"c" placeholder:"CHARS"`
}

// Run executes the generate command on the standard streams.
func (g *Generate) Run(ctx context.Context) error {
	logger := log.Default()

	logger.DebugContext(ctx, "generate",
		slog.String("source", g.Source),
		slog.String("target", g.Target),
		slog.Bool("overwrite", g.Overwrite),
		slog.Bool("use_default", g.UseDefault),
	)

	return g.Generator(prompt.Stdio(prompt.WithLogger(logger)), logger).Run(ctx)
}

// Generator returns the [Generator] configured by the command's flags.
func (g *Generate) Generator(term Terminal, logger log.Logger) *Generator {
	return &Generator{
		Target: g.Target,
		Parser: lang.NewParser(g.Source,
			lang.WithRandomChars(g.CharsForRandomString),
			lang.WithLogger(logger),
		),
		Overwrite:  g.Overwrite,
		UseDefault: g.UseDefault,
		Terminal:   term,
		Logger:     logger,
	}
}
