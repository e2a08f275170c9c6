package ui

import (
	"fmt"
	"time"

	"snake-buffer/ai"
	"snake-buffer/config"
	"snake-buffer/game"
	"snake-buffer/game/manager"
	"snake-buffer/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Session runs consecutive games with the same settings and keeps the score history.
// Hosts drive it from a single goroutine.
type Session struct {
	cfg     config.Config
	opts    []game.Option
	logger  zerolog.Logger
	game    *game.Game
	stats   *manager.StateManager
	agent   *ai.QLearning
	paused  bool
	started time.Time
}

// NewSession starts the first game. Extra options are applied after the defaults.
func NewSession(cfg config.Config, logger zerolog.Logger, opts ...game.Option) (*Session, error) {
	base := []game.Option{
		game.WithRandom(types.NewRandom(cfg.Seed)),
		game.WithLogger(logger),
	}
	s := &Session{
		cfg:    cfg,
		opts:   append(base, opts...),
		logger: logger,
		stats:  manager.NewStateManager(),
	}
	if cfg.Autopilot {
		s.agent = ai.NewQLearning(cfg.Seed)
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) Stats() *manager.StateManager {
	return s.stats
}

func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) Autopilot() bool {
	return s.agent != nil
}

func (s *Session) TogglePause() {
	if s.game.Over() {
		return
	}
	s.paused = !s.paused
}

// Restart replaces the current game with a fresh one.
func (s *Session) Restart() error {
	g, err := game.New(s.cfg.Width, s.cfg.Height, s.cfg.Speed, s.opts...)
	if err != nil {
		return errors.Wrap(err, "new game")
	}
	s.game = g
	s.paused = false
	s.started = time.Now()
	return nil
}

// Step ticks the current game once and reports whether food was eaten. Paused or
// finished games are left alone, except under autopilot, which restarts itself.
func (s *Session) Step(code string) (bool, error) {
	if s.paused {
		return false, nil
	}
	if s.game.Over() {
		if s.agent == nil {
			return false, nil
		}
		if err := s.Restart(); err != nil {
			return false, err
		}
	}

	if s.agent != nil && code == game.KeyNone {
		code = s.agent.NextKey(s.game)
	}

	before := s.game.Score()
	if s.game.Tick(code) {
		s.finish()
	}
	return s.game.Score() > before, nil
}

func (s *Session) finish() {
	if s.agent != nil {
		s.agent.EndGame(s.game)
	}
	best := s.stats.AddToHistory(manager.GameRecord{
		ID:        s.game.ID(),
		Score:     s.game.Score(),
		Speed:     s.game.Speed(),
		StartTime: s.started,
		EndTime:   time.Now(),
	})
	s.logger.Info().
		Str("game", s.game.ID()).
		Uint16("score", s.game.Score()).
		Bool("high_score", best).
		Int("games", len(s.stats.GetScoreHistory())).
		Msg("game recorded")
}

// Frame renders the board and returns it as text.
func (s *Session) Frame() string {
	s.game.Draw()
	return s.game.String()
}

// Status is the one-line summary shown under the board.
func (s *Session) Status() string {
	line := fmt.Sprintf("score %d  speed %d  best %d", s.game.Score(), s.game.Speed(), s.stats.GetHighScore())
	switch {
	case s.game.Over():
		line += "  game over (r restart, q quit)"
	case s.paused:
		line += "  paused"
	}
	if s.agent != nil {
		line += fmt.Sprintf("  autopilot games %d", s.agent.GamesPlayed)
	}
	return line
}
