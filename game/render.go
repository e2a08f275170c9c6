package game

import (
	"slices"
	"unicode"
	"unicode/utf16"

	"snake-buffer/game/types"

	"github.com/pkg/errors"
)

const (
	glyphBorder     = '#'
	glyphLineBreak  = '\n'
	glyphBackground = ' '
	glyphHead       = 'O'
	glyphVertical   = '║'
	glyphHorizontal = '═'
	glyphDownRight  = '╔'
	glyphDownLeft   = '╗'
	glyphUpRight    = '╚'
	glyphUpLeft     = '╝'
	glyphFood       = '•'
)

// Glyphs lists every rune Draw can emit.
func Glyphs() []rune {
	return []rune{
		glyphBorder, glyphLineBreak, glyphBackground, glyphHead,
		glyphVertical, glyphHorizontal,
		glyphDownRight, glyphDownLeft, glyphUpRight, glyphUpLeft,
		glyphFood,
	}
}

// Draw rasterizes the current state into the buffer. It only reads game state.
func (g *Game) Draw() {
	g.drawBackground()
	g.drawSnake()
	g.drawFood()
	g.drawBorders()
}

// Buffer returns a copy of the rendered UTF-16 code units.
func (g *Game) Buffer() []uint16 {
	return slices.Clone(g.buffer)
}

func (g *Game) BufferLen() int {
	return len(g.buffer)
}

// String decodes the buffer, one line per board row.
func (g *Game) String() string {
	return string(utf16.Decode(g.buffer))
}

func (g *Game) drawBackground() {
	for y := uint16(1); y <= g.grid.Height; y++ {
		for x := uint16(1); x <= g.grid.Width; x++ {
			g.writeAtCoords(glyphBackground, x, y)
		}
	}
}

func (g *Game) drawSnake() {
	body := g.snake.Body()
	for i, part := range body {
		g.writeAtCoords(segmentGlyph(body, i), part.X, part.Y)
	}
}

// segmentGlyph picks the box-drawing rune for body[i] from its neighbours in body order.
func segmentGlyph(body []types.Point, i int) rune {
	part := body[i]
	hasPrev := i > 0
	hasNext := i+1 < len(body)

	switch {
	case hasPrev && hasNext:
		prev, next := body[i-1], body[i+1]
		if prev.X == next.X {
			return glyphVertical
		}
		if prev.Y == next.Y {
			return glyphHorizontal
		}

		d := part.MustTransform(types.Down, 1)
		r := part.MustTransform(types.Right, 1)
		u, l := part, part
		if part.Y > 0 {
			u = part.MustTransform(types.Up, 1)
		}
		if part.X > 0 {
			l = part.MustTransform(types.Left, 1)
		}

		pair := func(a, b types.Point) bool {
			return (next == a && prev == b) || (prev == a && next == b)
		}
		switch {
		case pair(d, r):
			return glyphDownRight
		case pair(d, l):
			return glyphDownLeft
		case pair(u, r):
			return glyphUpRight
		default:
			return glyphUpLeft
		}
	case hasNext:
		return glyphHead
	case hasPrev:
		if part.Y == body[i-1].Y {
			return glyphHorizontal
		}
		return glyphVertical
	}
	panic(errors.Errorf("body point %s has no neighbours", part))
}

// drawFood treats (0,0) as no food; placement never produces it.
func (g *Game) drawFood() {
	food, _ := g.food.Food()
	if food.X > 0 && food.Y > 0 {
		g.writeAtCoords(glyphFood, food.X, food.Y)
	}
}

func (g *Game) drawBorders() {
	width, height := g.grid.Width, g.grid.Height
	for y := uint16(0); y < height; y++ {
		g.writeAtCoords(glyphBorder, 0, y)
		g.writeAtCoords(glyphBorder, width, y)
		g.writeAtCoords(glyphLineBreak, width+1, y)
	}
	for x := uint16(0); x < width; x++ {
		g.writeAtCoords(glyphBorder, x, 0)
		g.writeAtCoords(glyphBorder, x, height)
	}
}

func (g *Game) writeAtCoords(symbol rune, x, y uint16) {
	g.buffer[g.index(x, y)] = codeUnit(symbol)
}

// index maps board coordinates to a buffer slot. Each row carries one extra slot for
// the line break, and anything at or past the right border shifts back by one.
func (g *Game) index(x, y uint16) int {
	width := int(g.grid.Width)
	idx := int(x) + int(y)*width + int(y)
	if int(x) >= width {
		idx--
	}
	return idx
}

// codeUnit keeps the first UTF-16 unit of symbol.
func codeUnit(symbol rune) uint16 {
	if r1, _ := utf16.EncodeRune(symbol); r1 != unicode.ReplacementChar {
		return uint16(r1)
	}
	return uint16(symbol)
}
