package main

import (
	"io"
	"os"

	"snake-buffer/config"
	"snake-buffer/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	session, err := ui.NewSession(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("start game")
	}
	logger.Info().
		Uint16("width", cfg.Width).
		Uint16("height", cfg.Height).
		Uint16("speed", cfg.Speed).
		Uint64("seed", cfg.Seed).
		Str("ui", cfg.UI).
		Bool("autopilot", cfg.Autopilot).
		Msg("starting snake")

	switch cfg.UI {
	case config.UIWindow:
		err = ui.RunWindow(session, cfg.FontPath, logger)
	default:
		var term *ui.Terminal
		term, err = ui.NewTerminal(session, cfg.Sound, logger)
		if err == nil {
			err = term.Run()
		}
	}
	if err != nil {
		logger.Error().Err(err).Msg("host exited")
		closeLog()
		os.Exit(1)
	}

	stats := session.Stats()
	logger.Info().
		Uint16("high_score", stats.GetHighScore()).
		Float64("average", stats.AverageScore()).
		Int("games", len(stats.GetScoreHistory())).
		Msg("session finished")
}

// newLogger writes to the configured file. Without one, the window host logs to
// stderr and the terminal host discards, since stderr shares the screen.
func newLogger(cfg config.Config) (zerolog.Logger, func()) {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	var out io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.LogFile).Msg("open log file")
		}
		out = f
		closeLog = func() { f.Close() }
	case cfg.UI == config.UITerminal:
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	log.Logger = logger
	return logger, closeLog
}
