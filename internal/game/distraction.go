package game

import "fmt"

// Observer is an NPC whose attentiveness gates a class of cheats.
type Observer int

const (
	ObserverBird Observer = iota
	ObserverMagician
)

func (o Observer) String() string {
	switch o {
	case ObserverBird:
		return "BIRD"
	case ObserverMagician:
		return "MAGICIAN"
	}
	return fmt.Sprintf("OBSERVER_%d", int(o))
}

// DistractionState is one observer's countdown.
type DistractionState struct {
	Active          bool
	RoundsRemaining int
}

// DistractionChange describes a state transition produced by a trigger or
// a round tick, for the DistractionChanged event.
type DistractionChange struct {
	Observer Observer
	State    DistractionState
}

// DistractionTracker holds the two independent countdowns. Timers tick
// once per completed round; IsDistracted is always current as of the last
// tick, never cached.
type DistractionTracker struct {
	states map[Observer]*DistractionState
	// pending holds observers whose distraction starts after the next
	// tick, so "for exactly the next round" effects survive the tick of
	// the round that granted them.
	pending map[Observer]int
}

// NewDistractionTracker creates a tracker with both observers attentive.
func NewDistractionTracker() *DistractionTracker {
	return &DistractionTracker{
		states: map[Observer]*DistractionState{
			ObserverBird:     {},
			ObserverMagician: {},
		},
		pending: make(map[Observer]int),
	}
}

// IsDistracted reports whether the observer is currently distracted.
func (dt *DistractionTracker) IsDistracted(observer Observer) bool {
	return dt.states[observer].Active
}

// State returns a copy of the observer's countdown.
func (dt *DistractionTracker) State(observer Observer) DistractionState {
	return *dt.states[observer]
}

// Distract opens the observer's distraction window immediately, extending
// it if one is already open.
func (dt *DistractionTracker) Distract(observer Observer, rounds int) DistractionChange {
	state := dt.states[observer]
	state.Active = true
	state.RoundsRemaining += rounds
	return DistractionChange{Observer: observer, State: *state}
}

// DistractNextRound schedules a distraction that becomes active after the
// next round tick and lasts the given number of rounds. Used by the Meb
// word, which distracts the magician for exactly the following round.
func (dt *DistractionTracker) DistractNextRound(observer Observer, rounds int) {
	dt.pending[observer] += rounds
}

// Tick advances both countdowns by one round and promotes pending
// distractions. It returns a change for every observer whose state moved.
func (dt *DistractionTracker) Tick() []DistractionChange {
	var changes []DistractionChange
	for _, observer := range []Observer{ObserverBird, ObserverMagician} {
		state := dt.states[observer]
		changed := false
		if state.Active {
			state.RoundsRemaining--
			changed = true
			if state.RoundsRemaining <= 0 {
				state.RoundsRemaining = 0
				state.Active = false
			}
		}
		if rounds, ok := dt.pending[observer]; ok && rounds > 0 {
			delete(dt.pending, observer)
			state.Active = true
			state.RoundsRemaining += rounds
			changed = true
		}
		if changed {
			changes = append(changes, DistractionChange{Observer: observer, State: *state})
		}
	}
	return changes
}
