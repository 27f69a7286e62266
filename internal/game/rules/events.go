package rules

import (
	"sync"
	"time"
)

// EventType indicates the category of an engine event.
type EventType string

const (
	// Match lifecycle events
	EventMatchStarted EventType = "MATCH_STARTED"
	EventGameOver     EventType = "GAME_OVER"

	// Round events
	EventCardsDrawn    EventType = "CARDS_DRAWN"
	EventCardPlayed    EventType = "CARD_PLAYED"
	EventRoundResolved EventType = "ROUND_RESOLVED"
	EventWarEscalated  EventType = "WAR_ESCALATED"

	// Effect events
	EventWordEffectApplied  EventType = "WORD_EFFECT_APPLIED"
	EventDistractionChanged EventType = "DISTRACTION_CHANGED"

	// Cheat and item events
	EventCheatOutcome EventType = "CHEAT_OUTCOME"
	EventItemUsed     EventType = "ITEM_USED"

	// Reveal events (consumed by the UI layer only, no state change)
	EventHandRevealed    EventType = "HAND_REVEALED"
	EventPileTopRevealed EventType = "PILE_TOP_REVEALED"
)

// Event represents a state change that the UI layer and other subsystems
// may react to. Fields are used as each event type requires; unused fields
// are zero.
type Event struct {
	Type        EventType
	ID          string
	MatchID     string
	Seat        Seat   // participant concerned
	SeatSet     bool   // whether Seat is meaningful for this event
	Observer    string // distraction events: "BIRD" or "MAGICIAN"
	Cards       []string
	Amount      int  // cards transferred, rounds remaining, resource deltas
	Flag        bool // war_occurred, distraction active
	Word        string
	CheatID     string
	Result      string // cheat outcome: SUCCEEDED, REJECTED, CAUGHT
	Reason      string // rejection reason or game over reason
	Round       int
	Timestamp   time.Time
	Description string
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// TypedListener defines a callback that reacts to a specific event type.
type TypedListener struct {
	Handle    int
	EventType EventType
	Callback  func(Event)
}

// EventBus provides a synchronous publish/subscribe implementation with
// optional type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	typedListeners map[EventType][]TypedListener
	nextHandle     int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]TypedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], TypedListener{
		Handle:    handle,
		EventType: eventType,
		Callback:  callback,
	})
	return handle
}

// Unsubscribe removes the listener identified by the provided handle,
// whether it was registered for all events or for a single type.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].Handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	for _, listener := range bus.listeners {
		listener(event)
	}
	if typed, ok := bus.typedListeners[event.Type]; ok {
		for _, listener := range typed {
			listener.Callback(event)
		}
	}
}

// PublishBatch publishes multiple events in order.
func (bus *EventBus) PublishBatch(events []Event) {
	for _, event := range events {
		bus.Publish(event)
	}
}

// NewEvent creates an event with common fields populated.
func NewEvent(eventType EventType, matchID string, seat Seat) Event {
	return Event{
		Type:      eventType,
		MatchID:   matchID,
		Seat:      seat,
		SeatSet:   true,
		Timestamp: time.Now(),
	}
}
