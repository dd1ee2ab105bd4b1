package shared

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestLogger(t *testing.T) {
	t.Run("NewLogger writes to the given writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)
		logger.Info("hello", "key", "value")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected log output to contain message, got %q", buf.String())
		}
		if !strings.Contains(buf.String(), "key=value") {
			t.Errorf("expected log output to contain key=value, got %q", buf.String())
		}
	})

	t.Run("WithLogger adds fields", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := WithLogger(NewLogger(buf), "component", "server")
		logger.Info("started")

		if !strings.Contains(buf.String(), "component=server") {
			t.Errorf("expected child logger field, got %q", buf.String())
		}
	})

	t.Run("SetLogLevel filters lower levels", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)
		SetLogLevel(logger, log.WarnLevel)
		logger.Info("quiet")

		if buf.Len() != 0 {
			t.Errorf("expected info to be filtered, got %q", buf.String())
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "zoom.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		logger.Info("to file")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(data), "to file") {
			t.Errorf("expected file to contain log line, got %q", data)
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    log.Level
		wantErr bool
	}{
		{name: "empty defaults to info", input: "", want: log.InfoLevel},
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "warn", input: "warn", want: log.WarnLevel},
		{name: "unknown", input: "chatty", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected a valid uuid, got %q: %v", id, err)
	}
	if id == GenerateID() {
		t.Error("expected distinct ids")
	}
}
