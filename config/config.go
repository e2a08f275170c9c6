package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"snake-buffer/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	UITerminal = "terminal"
	UIWindow   = "window"
)

// Config holds everything the hosts need to start a session.
type Config struct {
	Width     uint16
	Height    uint16
	Speed     uint16
	Seed      uint64
	UI        string
	Autopilot bool
	Sound     bool
	FontPath  string
	LogLevel  zerolog.Level
	LogFile   string
}

// Load reads .env (if present), then the environment, then args. Flags win.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return parse(args, os.Getenv)
}

func parse(args []string, getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	widthDefault, err := envUint(env, "SNAKE_WIDTH", types.DefaultWidth)
	if err != nil {
		return Config{}, err
	}
	heightDefault, err := envUint(env, "SNAKE_HEIGHT", types.DefaultHeight)
	if err != nil {
		return Config{}, err
	}
	speedDefault, err := envUint(env, "SNAKE_SPEED", types.DefaultSpeed)
	if err != nil {
		return Config{}, err
	}
	seedDefault, err := envUint(env, "SNAKE_SEED", 0)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	width := fs.Uint("width", widthDefault, "Board interior width")
	height := fs.Uint("height", heightDefault, "Board interior height")
	speed := fs.Uint("speed", speedDefault, "Initial speed, 0 (slow) to 20 (fast)")
	seed := fs.Uint64("seed", uint64(seedDefault), "Random seed, 0 picks one from the clock")
	ui := fs.String("ui", env("SNAKE_UI", UITerminal), "Host: terminal or window")
	autopilot := fs.Bool("autopilot", env("SNAKE_AUTOPILOT", "") == "true", "Let the Q-learning agent play")
	sound := fs.Bool("sound", env("SNAKE_SOUND", "true") == "true", "Beep when food is eaten (terminal)")
	font := fs.String("font", env("SNAKE_FONT", ""), "TTF font for the window host")
	level := fs.String("log-level", env("LOG_LEVEL", "info"), "Log level")
	logFile := fs.String("log", env("LOG_FILE", ""), "Log file, empty keeps stderr (window) or discards (terminal)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	for name, v := range map[string]uint{"width": *width, "height": *height, "speed": *speed} {
		if v > 0xFFFF {
			return Config{}, errors.Errorf("%s %d does not fit 16 bits", name, v)
		}
	}
	if *ui != UITerminal && *ui != UIWindow {
		return Config{}, errors.Errorf("unknown ui %q", *ui)
	}
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		return Config{}, errors.Wrap(err, "log level")
	}

	cfg := Config{
		Width:     uint16(*width),
		Height:    uint16(*height),
		Speed:     uint16(*speed),
		Seed:      *seed,
		UI:        *ui,
		Autopilot: *autopilot,
		Sound:     *sound,
		FontPath:  *font,
		LogLevel:  lvl,
		LogFile:   *logFile,
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

func envUint(env func(string, string) string, key string, fallback uint) (uint, error) {
	v := env(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}
	return uint(n), nil
}
