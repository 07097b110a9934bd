package playback

import (
	"testing"

	"github.com/milk9111/animake/anim"
)

func walkClip(loop bool) *anim.Clip {
	return &anim.Clip{
		Width: 32, Height: 32, Loop: loop,
		Patterns: []anim.Pattern{{Wait: 5}, {Wait: 5, Column: 1}},
	}
}

func TestAdvanceWalkScenario(t *testing.T) {
	clip := walkClip(true)
	c := NewClock()
	want := map[int]int{1: 0, 4: 0, 5: 1, 6: 1, 9: 1, 10: 0, 11: 0}
	for call := 1; call <= 11; call++ {
		c.Advance(clip, 1)
		if idx, ok := want[call]; ok && c.Index() != idx {
			t.Fatalf("after call %d: index %d, want %d", call, c.Index(), idx)
		}
	}
}

func TestAdvanceWrapAndHold(t *testing.T) {
	cases := []struct {
		name string
		loop bool
		want []int
	}{
		{"loop", true, []int{1, 0, 1, 0}},
		{"hold", false, []int{1, 1, 1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clip := &anim.Clip{Loop: tc.loop, Patterns: []anim.Pattern{{Wait: 1}, {Wait: 1}}}
			c := NewClock()
			for i, w := range tc.want {
				c.Advance(clip, 1)
				if c.Index() != w {
					t.Fatalf("step %d: index %d, want %d", i, c.Index(), w)
				}
			}
		})
	}
}

func TestAdvanceSpeedRate(t *testing.T) {
	clip := walkClip(true)
	c := NewClock()
	c.SetSpeedRate(5)
	c.Advance(clip, 1)
	if c.Index() != 1 {
		t.Fatalf("speed 5 should step after one call, index %d", c.Index())
	}
}

func TestAdvanceFixedStep(t *testing.T) {
	clip := walkClip(true)
	c := NewClock()
	c.FixedStep = 0.5
	// threshold is 5*0.5 = 2.5 regardless of dt
	for i := 0; i < 2; i++ {
		c.Advance(clip, 1)
	}
	if c.Index() != 0 {
		t.Fatalf("stepped early: index %d", c.Index())
	}
	c.Advance(clip, 1)
	if c.Index() != 1 {
		t.Fatalf("index %d, want 1", c.Index())
	}
}

func TestAdvanceEdgeCases(t *testing.T) {
	c := NewClock()
	c.Advance(&anim.Clip{}, 1)
	c.Advance(nil, 1)
	if c.Index() != 0 || c.Elapsed() != 0 {
		t.Fatalf("empty clip changed the clock: %s", c)
	}

	c.index = 9
	c.Advance(&anim.Clip{Patterns: []anim.Pattern{{Wait: 100}, {Wait: 100}}}, 1)
	if c.Index() != 1 {
		t.Fatalf("out of range index not clamped: %d", c.Index())
	}

	c.Clamp(1)
	if c.Index() != 0 {
		t.Fatalf("Clamp(1) left index %d", c.Index())
	}
	c.Reset()
	if c.Index() != 0 || c.Elapsed() != 0 {
		t.Fatalf("Reset left %s", c)
	}
}

func TestSetSpeedRateClamps(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, MinSpeedRate},
		{-3, MinSpeedRate},
		{2.5, 2.5},
		{50, MaxSpeedRate},
	}
	for _, tc := range cases {
		c := NewClock()
		c.SetSpeedRate(tc.in)
		if c.SpeedRate != tc.want {
			t.Errorf("SetSpeedRate(%v) = %v, want %v", tc.in, c.SpeedRate, tc.want)
		}
	}
}
