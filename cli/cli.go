package cli

import (
	"context"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/createnv/cli/cmd"
	"github.com/ardnew/createnv/pkg"
)

// configFiles returns the candidate configuration files in load order.
//
//nolint:gochecknoglobals
var configFiles = pkg.ConfigFiles

// CLI is the top-level command-line interface for createnv.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Generate cmd.Generate `cmd:"" default:"withargs" help:"Create an environment file from a sample"`
	Init     cmd.Init     `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the createnv CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	files := configFiles()

	vars := kong.Vars{
		cmd.ConfigIdentifier: writableConfig(files),
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	options := []kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		vars,
	}

	for _, file := range files {
		loader := loadYAML
		if filepath.Ext(file) == ".json" {
			loader = kong.JSON
		}

		options = append(options, kong.Configuration(loader, file))
	}

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Apply the options that have no TextUnmarshaler, like --log-time.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}

// writableConfig returns the file init writes: the first YAML candidate.
func writableConfig(files []string) string {
	for _, file := range files {
		if ext := filepath.Ext(file); ext == ".yaml" || ext == ".yml" {
			return file
		}
	}

	return filepath.Join(pkg.ConfigDir(), "config.yaml")
}
