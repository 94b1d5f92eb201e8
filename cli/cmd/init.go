package cmd

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/createnv/log"
	"github.com/ardnew/createnv/profile"
)

const (
	configDirMode  fs.FileMode = 0o700
	configFileMode fs.FileMode = 0o600
)

// Init writes a configuration file holding the current option values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrNoKongContext
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok || confPath == "" {
		return ErrWriteConfig.Wrap(ErrNoKongContext).
			With(slog.String("var", ConfigIdentifier))
	}

	_, err := os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	data, err := yaml.Marshal(Options(ktx))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	err = os.MkdirAll(filepath.Dir(confPath), configDirMode)
	if err == nil {
		err = os.WriteFile(confPath, data, configFileMode)
	}

	if err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
		slog.Int("size", len(data)),
	)

	return nil
}

// ignoredFlags are never saved: they are actions, not options, or depend on
// how the binary was built.
var ignoredFlags = []string{"help", "version", "force", profile.Tag}

// Options returns the value of every option flag of the application, keyed
// by flag name, in declaration order. Empty strings are left out.
func Options(ktx *kong.Context) yaml.MapSlice {
	var opts yaml.MapSlice

	seen := make(map[string]bool)

	for flag := range flags(ktx.Model.Node) {
		if flag.Hidden || seen[flag.Name] ||
			slices.ContainsFunc(ignoredFlags, func(s string) bool {
				return strings.HasPrefix(flag.Name, s)
			}) {
			continue
		}

		seen[flag.Name] = true

		switch v := ktx.FlagValue(flag).(type) {
		case nil:
		case string:
			if v != "" {
				opts = append(opts, yaml.MapItem{Key: flag.Name, Value: v})
			}
		default:
			opts = append(opts, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return opts
}

// flags walks the flags of node and its descendants, parents first.
func flags(node *kong.Node) iter.Seq[*kong.Flag] {
	return func(yield func(*kong.Flag) bool) {
		var walk func(*kong.Node) bool

		walk = func(n *kong.Node) bool {
			for _, f := range n.Flags {
				if !yield(f) {
					return false
				}
			}

			for _, child := range n.Children {
				if !walk(child) {
					return false
				}
			}

			return true
		}

		walk(node)
	}
}
