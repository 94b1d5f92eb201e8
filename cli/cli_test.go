package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

const sample = `# Database
# Where the data lives
DB_HOST=localhost
DB_PORT=5432  # Port
DB_URL=postgres://{DB_HOST}:{DB_PORT}

# Secrets
SECRET=<random:16>
`

// useConfigDir points the configuration files at a fresh directory for the
// duration of the test.
func useConfigDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	saved := configFiles

	configFiles = func() []string {
		return []string{
			filepath.Join(dir, "config.json"),
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.yml"),
		}
	}

	t.Cleanup(func() { configFiles = saved })

	return dir
}

func writeSample(t *testing.T) (source, target string) {
	t.Helper()

	dir := t.TempDir()
	source = filepath.Join(dir, ".env.sample")
	target = filepath.Join(dir, ".env")

	err := os.WriteFile(source, []byte(sample), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	return source, target
}

func noExit(t *testing.T) func(int) {
	t.Helper()

	return func(code int) { t.Errorf("exit(%d) called", code) }
}

func TestRun_Generate(t *testing.T) {
	useConfigDir(t)
	source, target := writeSample(t)

	err := Run(context.Background(), noExit(t),
		"--source", source, "--target", target, "--use-default")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(string(data), "\n")
	want := []string{
		"# Database",
		"# Where the data lives",
		"DB_HOST=localhost",
		"DB_PORT=5432",
		"DB_URL=postgres://localhost:5432",
		"",
		"# Secrets",
	}

	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i+1, lines[i], line)
		}
	}

	secret, ok := strings.CutPrefix(lines[len(want)], "SECRET=")
	if !ok || len(secret) != 16 {
		t.Errorf("line %d = %q, want a 16-character secret",
			len(want)+1, lines[len(want)])
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := useConfigDir(t)
	source, target := writeSample(t)

	conf := "source: " + source + "\n" +
		"target: " + target + "\n" +
		"use_default: true\n" +
		"log:\n  level: error\n"

	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(conf), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	err = Run(context.Background(), noExit(t))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(target); err != nil {
		t.Errorf("target not created: %v", err)
	}
}

func TestRun_MissingSource(t *testing.T) {
	useConfigDir(t)

	dir := t.TempDir()
	target := filepath.Join(dir, ".env")

	err := Run(context.Background(), noExit(t),
		"--source", filepath.Join(dir, "missing"), "--target", target, "-d")
	if err == nil {
		t.Fatal("Run() error = nil, want an error")
	}

	if _, err := os.Stat(target); err == nil {
		t.Error("target created despite missing source")
	}
}

func TestRun_Init(t *testing.T) {
	dir := useConfigDir(t)

	err := Run(context.Background(), noExit(t),
		"init", "--log-level", "debug")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any

	err = yaml.Unmarshal(data, &got)
	if err != nil {
		t.Fatal(err)
	}

	for key, want := range map[string]any{
		"log-level": "debug",
		"target":    ".env",
		"source":    ".env.sample",
	} {
		if got[key] != want {
			t.Errorf("%s = %v, want %v", key, got[key], want)
		}
	}
}

func TestRun_Version(t *testing.T) {
	useConfigDir(t)

	exited := -1

	// kong continues after exit returns, so the error is irrelevant.
	_ = Run(context.Background(), func(code int) { exited = code },
		"--version", "--source", filepath.Join(t.TempDir(), "missing"))

	if exited != 0 {
		t.Errorf("exit code = %d, want 0", exited)
	}
}

func TestWritableConfig(t *testing.T) {
	t.Parallel()

	files := []string{"/c/config.json", "/c/config.yml", "/c/config.yaml"}

	if got := writableConfig(files); got != "/c/config.yml" {
		t.Errorf("writableConfig() = %q, want %q", got, "/c/config.yml")
	}
}
