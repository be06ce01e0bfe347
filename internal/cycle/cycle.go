// Package cycle animates the reserved palette ranges (slime, monitors, fire,
// shoreline) by rotating their entries at fixed rates.
package cycle

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/depeter/cutscene/internal/palette"
)

// Target is the palette the cycler rewrites.
type Target interface {
	Current() palette.Palette
	SetEntries(entries []palette.RGB, start, end int)
}

type band struct {
	name       string
	start, end int
	period     time.Duration
	last       time.Time
}

func defaultBands() []band {
	return []band{
		{name: "slime", start: 229, end: 232, period: 200 * time.Millisecond},
		{name: "monitors", start: 233, end: 237, period: 100 * time.Millisecond},
		{name: "fire_slow", start: 238, end: 242, period: 200 * time.Millisecond},
		{name: "fire_fast", start: 243, end: 247, period: 142 * time.Millisecond},
		{name: "shoreline", start: 248, end: 253, period: 200 * time.Millisecond},
	}
}

// Cycler rotates color bands on Tick while enabled.
//
// Tick may run on the frame goroutine while fades and movies run elsewhere.
// Disable waits for an in-flight Tick, so once it returns the palette is
// left alone until Enable.
type Cycler struct {
	mu      sync.Mutex
	target  Target
	logger  *zap.Logger
	enabled bool
	bands   []band
}

// New creates a cycler over target.
func New(target Target, enabled bool, logger *zap.Logger) *Cycler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cycler{
		target:  target,
		logger:  logger,
		enabled: enabled,
		bands:   defaultBands(),
	}
}

// Enable resumes cycling.
func (c *Cycler) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		c.logger.Debug("color cycling enabled")
	}
	c.enabled = true
}

// Disable suspends cycling.
func (c *Cycler) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled {
		c.logger.Debug("color cycling disabled")
	}
	c.enabled = false
}

// Enabled reports whether cycling is active.
func (c *Cycler) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Tick advances every band whose period has elapsed since its last step.
func (c *Cycler) Tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}

	cur := c.target.Current()
	for i := range c.bands {
		b := &c.bands[i]
		if !b.last.IsZero() && now.Sub(b.last) < b.period {
			continue
		}
		b.last = now

		n := b.end - b.start + 1
		entries := make([]palette.RGB, n)
		entries[0] = cur[b.end]
		copy(entries[1:], cur[b.start:b.end])
		c.target.SetEntries(entries, b.start, b.end)
	}
}
