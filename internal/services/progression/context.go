package progression

import "sync"

// StaticContext is a ServerContext backed by process configuration. The
// leveling formula is fixed at startup; the match/event multiplier comes and
// goes at runtime and may be set from any goroutine.
type StaticContext struct {
	exponential bool

	mu         sync.RWMutex
	multiplier *float64
}

// NewStaticContext creates a context with no active multiplier.
func NewStaticContext(exponential bool) *StaticContext {
	return &StaticContext{exponential: exponential}
}

func (c *StaticContext) UseExponentialXP() bool { return c.exponential }

// XPMultiplier returns the active multiplier, if one is set.
func (c *StaticContext) XPMultiplier() (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.multiplier == nil {
		return 0, false
	}
	return *c.multiplier, true
}

// SetMultiplier activates an xp multiplier for the current server event.
func (c *StaticContext) SetMultiplier(value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.multiplier = &value
}

// ClearMultiplier deactivates any multiplier.
func (c *StaticContext) ClearMultiplier() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.multiplier = nil
}
