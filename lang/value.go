package lang

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

// DefaultRandomChars is the default set of characters random values are drawn
// from: ASCII letters, digits and a handful of punctuation marks.
const DefaultRandomChars = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!@#$%^&*(-_=+)"

// Bounds of the length of a random value when none is given.
const (
	MinRandomLength = 64
	MaxRandomLength = 128
)

// Prompter asks a human for a value.
//
// Prompt blocks until the human answers and returns def unmodified if
// nothing was entered. An empty def means there is no default.
type Prompter interface {
	Prompt(ctx context.Context, label, def string) (string, error)
}

// PrompterFunc adapts a function to the [Prompter] interface.
type PrompterFunc func(ctx context.Context, label, def string) (string, error)

// Prompt calls f.
func (f PrompterFunc) Prompt(
	ctx context.Context,
	label, def string,
) (string, error) {
	return f(ctx, label, def)
}

// Resolution is the state every [Value] is resolved against.
type Resolution struct {
	Prompter   Prompter
	UseDefault bool
	Settings   *Settings // Values resolved so far within the group
}

// Value is a named setting that can produce its string value.
//
// The set of implementations is closed: [Config], [RandomConfig] and
// [AutoConfig].
type Value interface {
	Key() string
	Resolve(ctx context.Context, r *Resolution) (string, error)

	value()
}

// Prompted is a [Value] the user may be asked for.
type Prompted interface {
	Value

	// Label is the text shown when prompting.
	Label() string

	// HasDefault reports whether resolution in using-default mode can
	// complete without prompting.
	HasDefault() bool
}

// Config is a plain variable, either given a literal default or prompted.
type Config struct {
	Name      string
	HumanName string // Display label overriding Name; empty if absent
	Default   string // Empty if absent
}

func (Config) value() {}

// Key returns the variable name.
func (c Config) Key() string { return c.Name }

// Label returns the human name if set, or the variable name.
func (c Config) Label() string { return label(c.Name, c.HumanName) }

// String returns the label.
func (c Config) String() string { return c.Label() }

// HasDefault reports whether a non-empty default is set.
func (c Config) HasDefault() bool { return c.Default != "" }

// Resolve returns the default when r.UseDefault is set and a default exists.
// Otherwise it prompts with the default as prefill.
func (c Config) Resolve(ctx context.Context, r *Resolution) (string, error) {
	if r.UseDefault && c.HasDefault() {
		return c.Default, nil
	}

	return prompt(ctx, r, c.Label(), c.Default)
}

// RandomConfig is a variable whose default is a freshly generated random
// string.
type RandomConfig struct {
	Name         string
	HumanName    string // Display label overriding Name; empty if absent
	AllowedChars string // Characters the value is drawn from
	Length       int    // Zero means a random length in [64, 128]

	rng *rand.Rand
}

func (RandomConfig) value() {}

// Key returns the variable name.
func (c RandomConfig) Key() string { return c.Name }

// Label returns the human name if set, or the variable name.
func (c RandomConfig) Label() string { return label(c.Name, c.HumanName) }

// String returns the label.
func (c RandomConfig) String() string { return c.Label() }

// HasDefault always reports true, since a default can always be generated.
func (RandomConfig) HasDefault() bool { return true }

// Default returns a new random string on every call.
//
// Each character is drawn uniformly, with replacement, from AllowedChars.
func (c RandomConfig) Default() string {
	intN := rand.IntN
	if c.rng != nil {
		intN = c.rng.IntN
	}

	length := c.Length
	if length <= 0 {
		length = MinRandomLength + intN(MaxRandomLength-MinRandomLength+1)
	}

	chars := []rune(c.AllowedChars)
	if len(chars) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.Grow(length)

	for range length {
		sb.WriteRune(chars[intN(len(chars))])
	}

	return sb.String()
}

// Resolve returns a random default when r.UseDefault is set. Otherwise it
// prompts with a random default as prefill.
func (c RandomConfig) Resolve(
	ctx context.Context,
	r *Resolution,
) (string, error) {
	if r.UseDefault {
		return c.Default(), nil
	}

	return prompt(ctx, r, c.Label(), c.Default())
}

// placeholder matches a reference to another variable inside an AutoConfig
// value.
var placeholder = regexp.MustCompile(`\{([A-Z_0-9]+)\}`)

// AutoConfig is a variable computed from other variables of its group.
//
// Each {NAME} placeholder in Value is replaced by the resolved value of NAME.
type AutoConfig struct {
	Name  string
	Value string
}

func (AutoConfig) value() {}

// Key returns the variable name.
func (c AutoConfig) Key() string { return c.Name }

// References returns the names of the variables c depends on, in order of
// first appearance.
func (c AutoConfig) References() []string {
	var (
		refs []string
		seen = make(map[string]struct{})
	)

	for _, m := range placeholder.FindAllStringSubmatch(c.Value, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}

		seen[m[1]] = struct{}{}
		refs = append(refs, m[1])
	}

	return refs
}

// Resolve substitutes every placeholder with its value from r.Settings.
//
// Resolve never prompts. A placeholder naming a variable absent from
// r.Settings is an [ErrReference].
func (c AutoConfig) Resolve(_ context.Context, r *Resolution) (string, error) {
	for _, ref := range c.References() {
		if _, ok := r.Settings.Get(ref); ok {
			continue
		}

		return "", referenceError(c.Name, ref, r.Settings.Keys())
	}

	return placeholder.ReplaceAllStringFunc(c.Value, func(m string) string {
		v, _ := r.Settings.Get(m[1 : len(m)-1])

		return v
	}), nil
}

// referenceError reports that name refers to ref, which is not among known.
func referenceError(name, ref string, known []string) error {
	msg := fmt.Sprintf("%s refers to {%s}, which is not defined in its group",
		name, ref)

	attrs := []slog.Attr{
		slog.String("name", name),
		slog.String("reference", ref),
	}

	if matches := fuzzy.Find(ref, known); len(matches) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", matches[0].Str)

		attrs = append(attrs, slog.String("suggestion", matches[0].Str))
	}

	return ErrReference.Wrap(errors.New(msg)).With(attrs...)
}

func label(name, human string) string {
	if human != "" {
		return human
	}

	return name
}

func prompt(
	ctx context.Context,
	r *Resolution,
	label, def string,
) (string, error) {
	if r.Prompter == nil {
		return "", ErrNoPrompter.With(slog.String("label", label))
	}

	return r.Prompter.Prompt(ctx, label, def)
}
