package ui

import (
	"strings"
	"time"

	"snake-buffer/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const (
	fontSize      = 24
	lineHeight    = 26
	borderPadding = 10 // Padding around the board text
)

// Renderer draws a session's text buffer in a raylib window.
type Renderer struct {
	session  *Session
	font     rl.Font
	ownsFont bool
	logger   zerolog.Logger
}

// RunWindow opens a window sized for the board and plays until it is closed.
func RunWindow(session *Session, fontPath string, logger zerolog.Logger) error {
	g := session.Game()
	cols := int32(g.Width()) + 1
	rows := int32(g.Height()) + 3 // bottom border, gap, status line
	width := cols*fontSize*2/3 + borderPadding*2
	if width < 480 {
		width = 480
	}
	rl.InitWindow(width, rows*lineHeight+borderPadding*2, "Snake")
	defer rl.CloseWindow()

	r := NewRenderer(session, fontPath, logger)
	defer r.Unload()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			break
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			session.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			if err := session.Restart(); err != nil {
				return err
			}
		}

		if session.Paused() || (session.Game().Over() && !session.Autopilot()) {
			r.Draw()
			time.Sleep(50 * time.Millisecond)
			continue
		}

		if _, err := session.Step(windowKeyCode()); err != nil {
			return err
		}
		r.Draw()
	}
	return nil
}

func NewRenderer(session *Session, fontPath string, logger zerolog.Logger) *Renderer {
	r := &Renderer{
		session: session,
		font:    rl.GetFontDefault(),
		logger:  logger,
	}
	if fontPath != "" {
		// The default font has no box-drawing glyphs; load them explicitly.
		runes := append([]rune(" !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"), game.Glyphs()...)
		r.font = rl.LoadFontEx(fontPath, fontSize, runes)
		r.ownsFont = true
		logger.Debug().Str("font", fontPath).Int("glyphs", len(runes)).Msg("font loaded")
	}
	return r
}

func (r *Renderer) Unload() {
	if r.ownsFont {
		rl.UnloadFont(r.font)
	}
}

func (r *Renderer) Draw() {
	frame := r.session.Frame()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		pos := rl.Vector2{X: borderPadding, Y: float32(borderPadding + i*lineHeight)}
		rl.DrawTextEx(r.font, line, pos, fontSize, 1, rl.RayWhite)
	}

	status := rl.Vector2{X: borderPadding, Y: float32(borderPadding + (len(lines)+1)*lineHeight)}
	color := rl.Yellow
	if r.session.Game().Over() {
		color = rl.Red
	}
	rl.DrawTextEx(r.font, r.session.Status(), status, fontSize*3/4, 1, color)
	rl.EndDrawing()
}

// windowKeyCode maps WASD and the arrow keys pressed this frame to game key codes.
func windowKeyCode() string {
	switch {
	case rl.IsKeyPressed(rl.KeyW) || rl.IsKeyPressed(rl.KeyUp):
		return game.KeyUp
	case rl.IsKeyPressed(rl.KeyD) || rl.IsKeyPressed(rl.KeyRight):
		return game.KeyRight
	case rl.IsKeyPressed(rl.KeyS) || rl.IsKeyPressed(rl.KeyDown):
		return game.KeyDown
	case rl.IsKeyPressed(rl.KeyA) || rl.IsKeyPressed(rl.KeyLeft):
		return game.KeyLeft
	}
	return game.KeyNone
}
