package stats

import (
	"time"

	"grabbber/internal/services/revenue"
)

// Counter animates a number from zero to Target in Increment steps spread
// evenly across Duration.
type Counter struct {
	Target    int
	Increment int
	Duration  time.Duration
}

// ShareCounter is the hero counter that counts up to the partner share.
var ShareCounter = Counter{
	Target:    revenue.SharePercent,
	Increment: 1,
	Duration:  1500 * time.Millisecond,
}

// Step is the delay between frames, Duration / (Target / Increment) with a
// fractional step count.
func (c Counter) Step() time.Duration {
	if c.Target <= 0 || c.Increment <= 0 {
		return 0
	}
	return time.Duration(float64(c.Duration) * float64(c.Increment) / float64(c.Target))
}

// Frames lists the values shown after each step. The final frame is always
// Target even when Increment does not divide it.
func (c Counter) Frames() []Frame {
	if c.Target <= 0 || c.Increment <= 0 {
		return []Frame{{Value: c.Target}}
	}

	step := c.Step()
	frames := make([]Frame, 0, c.Target/c.Increment+1)
	current := 0
	for i := 1; current < c.Target; i++ {
		current += c.Increment
		if current > c.Target {
			current = c.Target
		}
		frames = append(frames, Frame{
			Value:    current,
			AtMillis: (step * time.Duration(i)).Milliseconds(),
		})
	}
	return frames
}

// HeroStats returns the hero counters.
func HeroStats() Hero {
	return Hero{
		SharePercent: revenue.SharePercent,
		UpfrontCost:  revenue.FormatAmount(0),
		Frames:       ShareCounter.Frames(),
	}
}
