package game

import (
	"time"

	"snake-buffer/game/types"

	"github.com/pkg/errors"
)

// Pacer suspends the ticking goroutine between moves.
type Pacer interface {
	Pause(d time.Duration)
}

// SleepPacer parks the goroutine on a timer.
type SleepPacer struct{}

func (SleepPacer) Pause(d time.Duration) {
	time.Sleep(d)
}

// Interval maps a speed to the delay before its move. Higher speed is shorter.
func Interval(speed uint16) time.Duration {
	if speed > types.MaxSpeed {
		panic(errors.Wrapf(types.ErrSpeedRange, "speed %d exceeds %d", speed, types.MaxSpeed))
	}
	const step = (types.MaxInterval - types.MinInterval) / types.MaxSpeed
	ms := types.MinInterval + step*(types.MaxSpeed-speed)
	return time.Duration(ms) * time.Millisecond
}
