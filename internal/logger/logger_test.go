package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := ParseLevel(tc.in); got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", FileConfig{}, &buf)

	log.Info("hidden")
	log.Warn("shown", zap.Int("triangles", 12))
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "triangles") {
		t.Errorf("warn entry missing: %q", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("level not encoded: %q", out)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "glyph3d.log")
	cfg := DefaultFileConfig(path)
	cfg.Compress = false

	log := New("debug", cfg, nil)
	log.Debug("frame", zap.Int("drawn", 2))
	log.Error("load failed")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	for _, want := range []string{"DEBUG", "frame", "drawn", "ERROR", "load failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log file missing %q:\n%s", want, out)
		}
	}
}

func TestNoOutputsIsNop(t *testing.T) {
	log := New("debug", FileConfig{}, nil)
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger without outputs should be a no-op")
	}
}

func TestInit(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	var buf bytes.Buffer
	got := Init("info", FileConfig{}, &buf)
	if got != Log {
		t.Error("Init did not install the returned logger")
	}

	Log.Info("hello")
	Sync()
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("global logger did not write: %q", buf.String())
	}
}
