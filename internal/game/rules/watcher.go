package rules

import "sync"

// Watcher observes the event stream and accumulates derived state that the
// core transition functions do not need to carry.
type Watcher interface {
	Watch(event Event)
	Reset()
}

// MatchStats is a snapshot of what a MatchStatsWatcher has seen.
type MatchStats struct {
	RoundsResolved   int
	Wars             int
	WarEscalations   int
	CardsTransferred int
	WordsApplied     int
	CheatsAttempted  int
	CheatsSucceeded  int
	ItemsUsed        int
}

// MatchStatsWatcher tallies match activity from the event stream. It is
// safe for concurrent use; the bus publishes synchronously but readers may
// snapshot from other goroutines.
type MatchStatsWatcher struct {
	mu    sync.Mutex
	stats MatchStats
}

// NewMatchStatsWatcher creates an empty stats watcher.
func NewMatchStatsWatcher() *MatchStatsWatcher {
	return &MatchStatsWatcher{}
}

// Attach subscribes the watcher to the bus and returns the subscription
// handle.
func (w *MatchStatsWatcher) Attach(bus *EventBus) int {
	return bus.Subscribe(w.Watch)
}

// Watch implements Watcher.
func (w *MatchStatsWatcher) Watch(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch event.Type {
	case EventRoundResolved:
		w.stats.RoundsResolved++
		w.stats.CardsTransferred += event.Amount
		if event.Flag {
			w.stats.Wars++
		}
	case EventWarEscalated:
		w.stats.WarEscalations++
	case EventWordEffectApplied:
		w.stats.WordsApplied++
	case EventCheatOutcome:
		w.stats.CheatsAttempted++
		if event.Result == "SUCCEEDED" {
			w.stats.CheatsSucceeded++
		}
	case EventItemUsed:
		if event.Result == "SUCCEEDED" {
			w.stats.ItemsUsed++
		}
	case EventMatchStarted:
		w.resetLocked()
	}
}

// Reset implements Watcher.
func (w *MatchStatsWatcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *MatchStatsWatcher) resetLocked() {
	w.stats = MatchStats{}
}

// Stats returns a copy of the current tallies.
func (w *MatchStatsWatcher) Stats() MatchStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
