package lang

import (
	"context"
	"log/slog"
	"strings"
)

// Group is the set of variables declared by one block of a template.
type Group struct {
	Title       string
	Description string      // Empty if absent
	Configs     []Prompted  // Config and RandomConfig values in source order
	Auto        *AutoConfig // Computed from Configs; nil if absent
}

// Values returns every value of the group in output order: the configs,
// then the computed value, if any.
func (g *Group) Values() []Value {
	values := make([]Value, 0, len(g.Configs)+1)
	for _, c := range g.Configs {
		values = append(values, c)
	}

	if g.Auto != nil {
		values = append(values, *g.Auto)
	}

	return values
}

// String returns the banner announcing the group to the user.
func (g *Group) String() string {
	contents := []string{"", g.Title}
	if g.Description != "" {
		contents = append(contents, "("+g.Description+")")
	}

	return strings.Join(contents, "\n")
}

// Header returns the comment lines that introduce the group in an
// environment file.
func (g *Group) Header() []string {
	header := []string{"# " + g.Title}
	if g.Description != "" {
		header = append(header, "# "+g.Description)
	}

	return header
}

// ShouldEcho reports whether the group should be announced before it is
// resolved. It is false only when resolution will not prompt at all, i.e.,
// when useDefault is set and every config has a default.
func (g *Group) ShouldEcho(useDefault bool) bool {
	if !useDefault {
		return true
	}

	for _, c := range g.Configs {
		if !c.HasDefault() {
			return true
		}
	}

	return false
}

// Resolve resolves each config in order, prompting via p as needed, then
// computes the group's AutoConfig from the result.
func (g *Group) Resolve(
	ctx context.Context,
	p Prompter,
	useDefault bool,
) (*Settings, error) {
	r := &Resolution{
		Prompter:   p,
		UseDefault: useDefault,
		Settings:   NewSettings(),
	}

	for _, v := range g.Values() {
		value, err := v.Resolve(ctx, r)
		if err != nil {
			return nil, WrapError(err).With(slog.String("group", g.Title))
		}

		r.Settings.Set(v.Key(), value)
	}

	return r.Settings, nil
}
