package game

import "snake-buffer/game/types"

// Key codes understood by DefaultKeyMap. Hosts translate their native keys to these.
const (
	KeyUp    = "KeyW"
	KeyRight = "KeyD"
	KeyDown  = "KeyS"
	KeyLeft  = "KeyA"
	KeyNone  = ""
)

// KeyMap resolves an input code into a turn command.
type KeyMap map[string]types.Direction

func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyUp:    types.Up,
		KeyRight: types.Right,
		KeyDown:  types.Down,
		KeyLeft:  types.Left,
	}
}

func (m KeyMap) Command(code string) (types.Direction, bool) {
	d, ok := m[code]
	return d, ok
}

// Code is the reverse lookup, used to feed a direction back through Tick.
func (m KeyMap) Code(d types.Direction) string {
	for code, dir := range m {
		if dir == d {
			return code
		}
	}
	return KeyNone
}
