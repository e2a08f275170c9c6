package ui

import (
	"strings"
	"time"

	"snake-buffer/game"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Terminal shows a session with tcell and plays a tone when food is eaten.
type Terminal struct {
	screen    tcell.Screen
	session   *Session
	logger    zerolog.Logger
	audioInit bool
}

func NewTerminal(session *Session, sound bool, logger zerolog.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "new screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}

	t := &Terminal{
		screen:  screen,
		session: session,
		logger:  logger,
	}
	if sound {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn().Err(err).Msg("audio initialization failed")
		} else {
			t.audioInit = true
		}
	}
	return t, nil
}

func (t *Terminal) playEatSound() {
	if !t.audioInit {
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

// Run blocks until the player quits. Each game tick sleeps for its own interval, so
// the loop needs no ticker of its own.
func (t *Terminal) Run() error {
	// Restores the terminal on return and while a panic unwinds.
	defer t.screen.Fini()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	t.draw()
	for {
		code := game.KeyNone
	drain:
		for {
			select {
			case ev := <-events:
				action, key := t.handleInput(ev)
				switch action {
				case actionQuit:
					return nil
				case actionRestart:
					if err := t.session.Restart(); err != nil {
						return err
					}
					t.logger.Debug().Str("game", t.session.Game().ID()).Msg("restart")
				case actionPause:
					t.session.TogglePause()
				case actionTurn:
					code = key
				}
			default:
				break drain
			}
		}

		if t.session.Paused() || (t.session.Game().Over() && !t.session.Autopilot()) {
			t.draw()
			time.Sleep(50 * time.Millisecond)
			continue
		}

		ate, err := t.session.Step(code)
		if err != nil {
			return err
		}
		if ate {
			t.playEatSound()
		}
		t.draw()
	}
}

type inputAction int

const (
	actionNone inputAction = iota
	actionTurn
	actionPause
	actionRestart
	actionQuit
)

func (t *Terminal) handleInput(ev tcell.Event) (inputAction, string) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return actionQuit, ""
		}
		if code := terminalKeyCode(ev); code != game.KeyNone {
			return actionTurn, code
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return actionQuit, ""
			case ' ':
				return actionPause, ""
			case 'r':
				return actionRestart, ""
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return actionNone, ""
}

// terminalKeyCode maps WASD and the arrow keys to game key codes.
func terminalKeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyRight:
		return game.KeyRight
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.KeyUp
		case 'd', 'D':
			return game.KeyRight
		case 's', 'S':
			return game.KeyDown
		case 'a', 'A':
			return game.KeyLeft
		}
	}
	return game.KeyNone
}

func (t *Terminal) draw() {
	t.screen.Clear()
	style := tcell.StyleDefault
	lines := strings.Split(t.session.Frame(), "\n")
	for y, line := range lines {
		x := 0
		for _, r := range line {
			t.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
	status := t.session.Status()
	x := 0
	for _, r := range status {
		t.screen.SetContent(x, len(lines)+1, r, nil, style.Foreground(tcell.ColorYellow))
		x++
	}
	t.screen.Show()
}
