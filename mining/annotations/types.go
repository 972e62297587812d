// Package annotations provides a low-overhead event system for tracking
// mining progress and debugging information. A nil handler costs a
// single branch per event.
package annotations

import (
	"time"
)

// Event name constants following hierarchical naming pattern
const (
	// Run lifecycle
	MineBegin    = "mine/begin"
	MineComplete = "mine/completed"

	// Per-level progress
	LevelBegin    = "level/begin"
	LevelComplete = "level/complete"

	// Candidate generation
	CandidatesGenerated = "candidates/generated"
	CandidatesPruned    = "candidates/pruned"

	// Reducers
	ReduceClosed  = "reduce/closed"
	ReduceMaximal = "reduce/maximal"
)

// Event is a single annotation event emitted during a mining run.
type Event struct {
	Name    string                 // Event name using the constants above
	Start   time.Time              // Start timestamp
	End     time.Time              // End timestamp
	Latency time.Duration          // Duration (End - Start)
	Data    map[string]interface{} // Event-specific data
}

// Handler processes annotation events as they occur.
type Handler func(event Event)

// Emit sends an instantaneous event to the handler, if any.
func (h Handler) Emit(name string, data map[string]interface{}) {
	if h == nil {
		return
	}
	now := time.Now()
	h(Event{Name: name, Start: now, End: now, Data: data})
}

// Timed sends an event spanning from start to now.
func (h Handler) Timed(name string, start time.Time, data map[string]interface{}) {
	if h == nil {
		return
	}
	now := time.Now()
	h(Event{Name: name, Start: start, End: now, Latency: now.Sub(start), Data: data})
}
