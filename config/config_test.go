package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(nil, envOf(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 30 || cfg.Height != 10 || cfg.Speed != 2 {
		t.Errorf("board %dx%d speed %d, want 30x10 speed 2", cfg.Width, cfg.Height, cfg.Speed)
	}
	if cfg.UI != UITerminal || cfg.Autopilot || !cfg.Sound {
		t.Errorf("unexpected host defaults: %+v", cfg)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("log level %v, want info", cfg.LogLevel)
	}
	if cfg.Seed == 0 {
		t.Error("seed should be filled from the clock")
	}
}

func TestEnvironmentThenFlags(t *testing.T) {
	env := envOf(map[string]string{
		"SNAKE_WIDTH":     "40",
		"SNAKE_HEIGHT":    "20",
		"SNAKE_SPEED":     "5",
		"SNAKE_SEED":      "7",
		"SNAKE_UI":        "window",
		"SNAKE_AUTOPILOT": "true",
		"LOG_LEVEL":       "debug",
	})
	cfg, err := parse([]string{"-speed", "9", "-sound=false"}, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 20 {
		t.Errorf("board %dx%d, want 40x20", cfg.Width, cfg.Height)
	}
	if cfg.Speed != 9 {
		t.Errorf("flag should override env speed, got %d", cfg.Speed)
	}
	if cfg.Seed != 7 || cfg.UI != UIWindow || !cfg.Autopilot || cfg.Sound {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("log level %v, want debug", cfg.LogLevel)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad ui", []string{"-ui", "canvas"}, nil},
		{"bad level", []string{"-log-level", "loud"}, nil},
		{"too wide", []string{"-width", "70000"}, nil},
		{"env not a number", nil, map[string]string{"SNAKE_HEIGHT": "tall"}},
		{"unknown flag", []string{"-color"}, nil},
	}
	for _, tt := range tests {
		if _, err := parse(tt.args, envOf(tt.env)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
