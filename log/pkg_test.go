package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// Tests in this file replace the package-level logger and must not run in
// parallel.

func swapDefault(t *testing.T, l Logger) {
	t.Helper()

	defaultMu.Lock()
	original := defaultLog
	defaultLog = l
	defaultMu.Unlock()

	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	})
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	swapDefault(t, Make(&buf,
		WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false)))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"TraceContext", func(m string, a ...slog.Attr) {
			TraceContext(t.Context(), m, a...)
		}, "TRACE"},
		{"DebugContext", func(m string, a ...slog.Attr) {
			DebugContext(t.Context(), m, a...)
		}, "DEBUG"},
		{"InfoContext", func(m string, a ...slog.Attr) {
			InfoContext(t.Context(), m, a...)
		}, "INFO"},
		{"WarnContext", func(m string, a ...slog.Attr) {
			WarnContext(t.Context(), m, a...)
		}, "WARN"},
		{"ErrorContext", func(m string, a ...slog.Attr) {
			ErrorContext(t.Context(), m, a...)
		}, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("package message", slog.String("key", "value"))

			output := buf.String()
			for _, want := range []string{
				"package message",
				`"level":"` + tt.level + `"`,
				`"key":"value"`,
			} {
				if !strings.Contains(output, want) {
					t.Errorf("expected %s in output, got: %s", want, output)
				}
			}
		})
	}
}

func TestPackage_Config_ReconfiguresDefault(t *testing.T) {
	var buf bytes.Buffer
	swapDefault(t, Make(&buf, WithLevel(LevelError)))

	Info("hidden")

	if buf.Len() != 0 {
		t.Fatalf("expected nothing below Error, got: %s", buf.String())
	}

	got := Config(WithLevel(LevelInfo))

	if got.Level() != LevelInfo || Default().Level() != LevelInfo {
		t.Fatalf("Config did not update the default level")
	}

	Info("shown")

	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected message after Config, got: %s", buf.String())
	}
}
