package cli

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/createnv/cli/cmd"
	"github.com/ardnew/createnv/log"
)

// loadYAML is a [kong.ConfigurationLoader] that reads YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// Keys name flags without their leading dashes. Nested maps are joined with
// hyphens, so these documents are equivalent:
//
//	log-level: debug
//	log_level: debug
//	log:
//	  level: debug
//
// Command-line flags override config file values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cmd.ErrReadConfig.Wrap(err)
	}

	var doc map[string]any

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, cmd.ErrReadConfig.Wrap(err)
	}

	c := config{}
	c.flatten("", doc)

	return c, nil
}

// config implements [kong.Resolver] over a flat map of flag names.
type config map[string]any

// flatten adds every leaf of doc to c under its hyphen-joined path.
// Underscores in keys are normalized to hyphens.
func (c config) flatten(prefix string, doc map[string]any) {
	for key, value := range doc {
		name := prefix + strings.ReplaceAll(key, "_", "-")

		switch v := value.(type) {
		case map[string]any:
			c.flatten(name+"-", v)

		// Kong requires numbers as strings for parsing.
		case int:
			c[name] = strconv.Itoa(v)
		case int64:
			c[name] = strconv.FormatInt(v, 10)
		case uint64:
			c[name] = strconv.FormatUint(v, 10)
		case float64:
			c[name] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			c[name] = v
		}
	}
}

// Validate implements [kong.Resolver]. Keys that name no flag are reported
// with a warning, never an error, so a config file written by a newer
// version still loads.
func (c config) Validate(app *kong.Application) error {
	known := flagNames(app.Node)

	for _, key := range slices.Sorted(maps.Keys(c)) {
		if slices.Contains(known, key) {
			continue
		}

		attrs := []slog.Attr{slog.String("key", key)}
		if matches := fuzzy.Find(key, known); len(matches) > 0 {
			attrs = append(attrs, slog.String("suggestion", matches[0].Str))
		}

		log.Warn("unknown configuration key", attrs...)
	}

	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	// Not found: let kong use the default.
	return nil, nil
}

// flagNames returns the names of every flag of node and its descendants.
func flagNames(node *kong.Node) []string {
	var names []string

	for _, flag := range node.Flags {
		names = append(names, flag.Name)
	}

	for _, child := range node.Children {
		names = append(names, flagNames(child)...)
	}

	return names
}
