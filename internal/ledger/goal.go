package ledger

import (
	"sync"

	"klagtrack/internal/core"
)

// Goal is the single process-wide weekly income target. It lives apart
// from the entry store and has its own persisted lifecycle.
type Goal struct {
	mu     sync.RWMutex
	amount float64
}

// NewGoal returns a goal preset to the default target.
func NewGoal() *Goal {
	return &Goal{amount: core.DefaultWeeklyGoal}
}

// Amount returns the current weekly goal.
func (g *Goal) Amount() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.amount
}

// Set updates the goal. Non-positive values are rejected with
// ErrGoalRejected and the previous value is retained, so the stored
// goal is always positive.
func (g *Goal) Set(amount float64) error {
	if amount <= 0 {
		return core.ErrGoalRejected
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.amount = amount
	return nil
}

// Restore loads a persisted goal value, falling back to the default when
// the stored value is unusable. Used at startup only.
func (g *Goal) Restore(amount float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if amount > 0 {
		g.amount = amount
		return
	}
	g.amount = core.DefaultWeeklyGoal
}
