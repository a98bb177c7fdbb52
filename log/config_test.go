package log

import (
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("expected level %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" json ", FormatJSON},
		{"text", FormatText},
		{"bogus", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("expected format %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := makeConfig(nil,
		WithLevel(LevelError),
		WithFormat(FormatJSON),
		WithTimeLayout("15:04:05"),
		WithCaller(true),
		WithPretty(true),
	)

	if cfg.level != LevelError {
		t.Errorf("expected level %v, got %v", LevelError, cfg.level)
	}

	if cfg.format != FormatJSON {
		t.Errorf("expected format %v, got %v", FormatJSON, cfg.format)
	}

	if cfg.layout != "15:04:05" {
		t.Errorf("expected layout 15:04:05, got %q", cfg.layout)
	}

	if !cfg.caller || !cfg.pretty {
		t.Error("expected caller and pretty enabled")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := makeConfig(nil)

	if cfg.level != DefaultLevel {
		t.Errorf("expected default level, got %v", cfg.level)
	}

	if cfg.format != DefaultFormat {
		t.Errorf("expected default format, got %v", cfg.format)
	}

	if cfg.layout != DefaultTimeLayout {
		t.Errorf("expected default layout, got %q", cfg.layout)
	}
}
