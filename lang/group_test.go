package lang

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func greetingGroup() *Group {
	return &Group{
		Title:       "Greeting",
		Description: "Say hi!",
		Configs: []Prompted{
			Config{Name: "NAME", HumanName: "Your name"},
			Config{Name: "PERIOD", Default: "morning"},
		},
		Auto: &AutoConfig{Name: "GREETING", Value: "Good {PERIOD}, {NAME}!"},
	}
}

func TestGroup_String(t *testing.T) {
	t.Parallel()

	g := greetingGroup()
	if want := "\nGreeting\n(Say hi!)"; g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}

	g.Description = ""
	if want := "\nGreeting"; g.String() != want {
		t.Errorf("String() = %q, want %q", g.String(), want)
	}
}

func TestGroup_Header(t *testing.T) {
	t.Parallel()

	g := greetingGroup()
	if diff := cmp.Diff([]string{"# Greeting", "# Say hi!"}, g.Header()); diff != "" {
		t.Errorf("Header() mismatch (-want +got):\n%s", diff)
	}

	g.Description = ""
	if diff := cmp.Diff([]string{"# Greeting"}, g.Header()); diff != "" {
		t.Errorf("Header() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_Values(t *testing.T) {
	t.Parallel()

	var keys []string
	for _, v := range greetingGroup().Values() {
		keys = append(keys, v.Key())
	}

	if diff := cmp.Diff([]string{"NAME", "PERIOD", "GREETING"}, keys); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_ShouldEcho(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configs    []Prompted
		useDefault bool
		want       bool
	}{
		{
			name:    "prompting",
			configs: []Prompted{Config{Name: "A", Default: "1"}},
			want:    true,
		},
		{
			name:       "all defaults",
			configs:    []Prompted{Config{Name: "A", Default: "1"}, RandomConfig{Name: "B"}},
			useDefault: true,
			want:       false,
		},
		{
			name:       "one without default",
			configs:    []Prompted{Config{Name: "A", Default: "1"}, Config{Name: "B"}},
			useDefault: true,
			want:       true,
		},
		{
			name:       "no configs",
			useDefault: true,
			want:       false,
		},
	}

	for _, tt := range tests {
		g := &Group{Title: tt.name, Configs: tt.configs}
		if got := g.ShouldEcho(tt.useDefault); got != tt.want {
			t.Errorf("%s: ShouldEcho(%v) = %v, want %v",
				tt.name, tt.useDefault, got, tt.want)
		}
	}
}

func TestGroup_Resolve(t *testing.T) {
	t.Parallel()

	p := &scriptedPrompter{answers: []string{"Cuducos"}}

	settings, err := greetingGroup().Resolve(context.Background(), p, true)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	type pair struct{ Key, Value string }

	var got []pair
	for k, v := range settings.All() {
		got = append(got, pair{k, v})
	}

	want := []pair{
		{"NAME", "Cuducos"},
		{"PERIOD", "morning"},
		{"GREETING", "Good morning, Cuducos!"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}

	if len(p.calls) != 1 || p.calls[0].label != "Your name" {
		t.Errorf("prompts = %+v, want one for Your name", p.calls)
	}
}

func TestGroup_Resolve_Errors(t *testing.T) {
	t.Parallel()

	g := &Group{
		Title:   "Broken",
		Configs: []Prompted{Config{Name: "NAME", Default: "x"}},
		Auto:    &AutoConfig{Name: "GREETING", Value: "Hi {NAMES}"},
	}

	_, err := g.Resolve(context.Background(), &scriptedPrompter{}, true)
	if !errors.Is(err, ErrReference) {
		t.Errorf("Resolve() error = %v, want %v", err, ErrReference)
	}

	// The prompter runs out of answers on the first config.
	_, err = greetingGroup().Resolve(context.Background(), &scriptedPrompter{}, false)
	if err == nil {
		t.Error("Resolve() error = nil, want the prompter's error")
	}
}
