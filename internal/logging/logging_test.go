package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"disabled": zerolog.Disabled,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"":         zerolog.InfoLevel,
		"verbose":  zerolog.InfoLevel,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestClientLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ClientLogger{Logger: New(&buf, zerolog.DebugLevel)}

	l.Debugf("grooveshark: calling %s", "pingService")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "debug" {
		t.Errorf("expected debug level, got %v", entry["level"])
	}
	if entry["message"] != "grooveshark: calling pingService" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestClientLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := ClientLogger{Logger: New(&buf, zerolog.InfoLevel)}

	l.Debugf("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected debug output to be dropped at info level, got %q", buf.String())
	}
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sharkfin.log")

	logger, closer := Setup(path, "info")
	logger.Info().Str("method", "pingService").Msg("call finished")
	if err := closer.Close(); err != nil {
		t.Fatalf("failed to close log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"method":"pingService"`) {
		t.Errorf("expected structured field in log file, got %q", data)
	}
}
