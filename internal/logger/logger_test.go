package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewHonoursLevel(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := New("warn", format)
		if err != nil {
			t.Fatalf("new %s logger: %v", format, err)
		}
		if log.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("%s logger: expected info to be disabled at warn level", format)
		}
		if !log.Core().Enabled(zapcore.ErrorLevel) {
			t.Fatalf("%s logger: expected error to be enabled", format)
		}
	}
}
