package playback

import (
	"fmt"

	"github.com/milk9111/animake/anim"
)

const (
	MinSpeedRate = 0.01
	MaxSpeedRate = 10
)

// Clock steps through a clip's patterns. It holds no reference to the clip;
// the caller passes the current clip to every Advance.
//
// Each call adds dt*SpeedRate to the elapsed time and compares it with the
// current pattern's wait scaled by dt, so waits are measured in frames. When
// FixedStep is positive it replaces dt in that threshold and waits become
// multiples of a fixed duration instead.
type Clock struct {
	SpeedRate float64
	FixedStep float64

	index   int
	elapsed float64
}

func NewClock() *Clock {
	return &Clock{SpeedRate: 1}
}

// SetSpeedRate clamps rate into [MinSpeedRate, MaxSpeedRate].
func (c *Clock) SetSpeedRate(rate float64) {
	c.SpeedRate = min(max(rate, MinSpeedRate), MaxSpeedRate)
}

// Advance moves the clock forward by dt over clip. Looping clips wrap to the
// first pattern; others hold on the last one.
func (c *Clock) Advance(clip *anim.Clip, dt float64) {
	if clip == nil || len(clip.Patterns) == 0 {
		return
	}
	n := len(clip.Patterns)
	c.index = anim.ClampIndex(c.index, n)

	c.elapsed += dt * c.SpeedRate
	step := dt
	if c.FixedStep > 0 {
		step = c.FixedStep
	}
	if c.elapsed < clip.Patterns[c.index].Wait*step {
		return
	}
	c.elapsed = 0
	c.index++
	if c.index >= n {
		if clip.Loop {
			c.index = 0
		} else {
			c.index = n - 1
		}
	}
}

// Reset rewinds to the first pattern.
func (c *Clock) Reset() {
	c.index = 0
	c.elapsed = 0
}

// Clamp keeps the index valid after the clip's pattern count changed.
func (c *Clock) Clamp(n int) {
	c.index = anim.ClampIndex(c.index, n)
}

func (c *Clock) Index() int { return c.index }

func (c *Clock) Elapsed() float64 { return c.elapsed }

func (c *Clock) String() string {
	return fmt.Sprintf("pattern %d elapsed %.3f speed %.2f", c.index, c.elapsed, c.SpeedRate)
}
