package cli

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/createnv/cli/cmd"
	"github.com/ardnew/createnv/log"
)

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want config
	}{
		{
			name: "empty",
			doc:  "",
			want: config{},
		},
		{
			name: "hyphen keys",
			doc:  "log-level: debug\nuse-default: true\n",
			want: config{"log-level": "debug", "use-default": true},
		},
		{
			name: "underscore keys",
			doc:  "log_level: debug\nchars_for_random_string: abc\n",
			want: config{
				"log-level":               "debug",
				"chars-for-random-string": "abc",
			},
		},
		{
			name: "nested maps",
			doc:  "log:\n  level: info\n  pretty: false\ntarget: .env.local\n",
			want: config{
				"log-level":  "info",
				"log-pretty": false,
				"target":     ".env.local",
			},
		},
		{
			name: "numbers become strings",
			doc:  "answer: 42\nratio: 0.5\nbelow: -3\n",
			want: config{"answer": "42", "ratio": "0.5", "below": "-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver, err := loadYAML(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("loadYAML() error = %v", err)
			}

			got, ok := resolver.(config)
			if !ok {
				t.Fatalf("loadYAML() = %T, want config", resolver)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("loadYAML() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadYAML_Malformed(t *testing.T) {
	t.Parallel()

	_, err := loadYAML(strings.NewReader("target: [unterminated\n"))
	if !errors.Is(err, cmd.ErrReadConfig) {
		t.Errorf("loadYAML() error = %v, want %v", err, cmd.ErrReadConfig)
	}
}

func TestConfig_Resolve(t *testing.T) {
	t.Parallel()

	c := config{"log-level": "debug", "overwrite": true}

	tests := []struct {
		flag string
		want any
	}{
		{flag: "log-level", want: "debug"},
		{flag: "overwrite", want: true},
		{flag: "target", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()

			flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

			got, err := c.Resolve(nil, nil, flag)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	var buf bytes.Buffer

	log.Config(
		log.WithOutput(&buf),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelWarn),
	)
	t.Cleanup(func() { log.Config(log.WithDefaults(log.DefaultOutput())) })

	var cli struct {
		Generate cmd.Generate `cmd:"" default:"withargs"`
	}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}

	c := config{"target": ".env", "sorce": ".env.sample"}

	err = c.Validate(parser.Model)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := `level=WARN msg="unknown configuration key" key=sorce suggestion=source`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("Validate() logged %q, want %q", got, want)
	}
}

func TestFlagNames(t *testing.T) {
	t.Parallel()

	var cli struct {
		Verbose  bool         `name:"verbose"`
		Generate cmd.Generate `cmd:""`
		Init     cmd.Init     `cmd:""`
	}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}

	want := []string{
		"verbose",
		"target",
		"source",
		"overwrite",
		"use-default",
		"chars-for-random-string",
		"force",
	}

	got := slices.DeleteFunc(flagNames(parser.Model.Node), func(name string) bool {
		return name == "help"
	})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flagNames() mismatch (-want +got):\n%s", diff)
	}
}
