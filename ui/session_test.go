package ui

import (
	"strings"
	"testing"
	"time"

	"snake-buffer/config"
	"snake-buffer/game"

	"github.com/rs/zerolog"
)

type noPause struct{}

func (noPause) Pause(time.Duration) {}

func newSession(t *testing.T, autopilot bool) *Session {
	t.Helper()
	cfg := config.Config{Width: 12, Height: 8, Speed: 2, Seed: 11, Autopilot: autopilot}
	s, err := NewSession(cfg, zerolog.Nop(), game.WithPacer(noPause{}))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// runToEnd gives no input, so the snake runs straight into a wall.
func runToEnd(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 50 && !s.Game().Over(); i++ {
		if _, err := s.Step(game.KeyNone); err != nil {
			t.Fatal(err)
		}
	}
	if !s.Game().Over() {
		t.Fatal("snake should hit a wall going straight")
	}
}

func TestSessionRecordsFinishedGame(t *testing.T) {
	s := newSession(t, false)
	first := s.Game().ID()
	runToEnd(t, s)

	if got := len(s.Stats().GetScoreHistory()); got != 1 {
		t.Fatalf("history has %d games, want 1", got)
	}
	if rec := s.Stats().GetScoreHistory()[0]; rec.ID != first {
		t.Errorf("recorded %s, want %s", rec.ID, first)
	}
	if !strings.Contains(s.Status(), "game over") {
		t.Errorf("status %q should mention game over", s.Status())
	}

	// Finished games stay finished until restarted.
	if ate, err := s.Step(game.KeyUp); ate || err != nil {
		t.Errorf("step after game over: %v %v", ate, err)
	}
	if err := s.Restart(); err != nil {
		t.Fatal(err)
	}
	if s.Game().ID() == first || s.Game().Over() {
		t.Error("restart should start a fresh game")
	}
}

func TestSessionPause(t *testing.T) {
	s := newSession(t, false)
	head := s.Game().Head()

	s.TogglePause()
	if !s.Paused() || !strings.Contains(s.Status(), "paused") {
		t.Fatal("expected paused session")
	}
	if _, err := s.Step(game.KeyNone); err != nil {
		t.Fatal(err)
	}
	if s.Game().Head() != head {
		t.Error("paused session must not tick")
	}

	s.TogglePause()
	if _, err := s.Step(game.KeyNone); err != nil {
		t.Fatal(err)
	}
	if s.Game().Head() == head {
		t.Error("resumed session should tick")
	}
}

func TestSessionFrame(t *testing.T) {
	s := newSession(t, false)
	frame := s.Frame()
	lines := strings.Split(frame, "\n")
	if len(lines) != 9 {
		t.Fatalf("frame has %d lines, want 9", len(lines))
	}
	if !strings.Contains(frame, "O") {
		t.Error("frame should show the snake head")
	}
}

func TestAutopilotRestartsItself(t *testing.T) {
	s := newSession(t, true)
	keys := game.DefaultKeyMap()
	first := s.Game().ID()

	// Holding the current heading overrides the agent and runs into a wall every game.
	for i := 0; i < 100 && len(s.Stats().GetScoreHistory()) < 2; i++ {
		code := keys.Code(s.Game().Direction())
		if _, err := s.Step(code); err != nil {
			t.Fatal(err)
		}
	}
	history := s.Stats().GetScoreHistory()
	if len(history) != 2 {
		t.Fatalf("history has %d games, want 2", len(history))
	}
	if history[0].ID != first || history[1].ID == first {
		t.Errorf("history %s then %s, first game was %s", history[0].ID, history[1].ID, first)
	}
	if s.agent.GamesPlayed != 2 {
		t.Errorf("agent played %d games, want 2", s.agent.GamesPlayed)
	}
}
