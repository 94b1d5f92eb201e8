package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/createnv/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelInfo),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Info("template parsed", slog.Int("group_count", 4))
	logger.Debug("not shown")

	// Output:
	// level=INFO msg="template parsed" group_count=4
}

func Example_pretty() {
	// Pretty output is plain text when the writer is not a terminal.
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("none"))

	logger.With(slog.String("source", ".env.sample")).
		Trace("block parsed", slog.Group("group",
			slog.String("title", "Database"),
			slog.Bool("auto", true)))

	// Output:
	// level=TRACE msg=block parsed source=.env.sample group.title=Database group.auto=true
}
