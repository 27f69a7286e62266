package rules

import "testing"

func TestEventBusPublishReachesAllListeners(t *testing.T) {
	bus := NewEventBus()

	var got []EventType
	bus.Subscribe(func(e Event) {
		got = append(got, e.Type)
	})

	bus.Publish(NewEvent(EventCardsDrawn, "m1", SeatPlayer))
	bus.Publish(NewEvent(EventRoundResolved, "m1", SeatOpponent))

	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0] != EventCardsDrawn || got[1] != EventRoundResolved {
		t.Fatalf("unexpected event order: %v", got)
	}
}

func TestEventBusTypedListenerFiltersByType(t *testing.T) {
	bus := NewEventBus()

	var gameOvers int
	bus.SubscribeTyped(EventGameOver, func(e Event) {
		gameOvers++
	})

	bus.Publish(NewEvent(EventCardsDrawn, "m1", SeatPlayer))
	bus.Publish(NewEvent(EventGameOver, "m1", SeatPlayer))
	bus.Publish(NewEvent(EventGameOver, "m1", SeatPlayer))

	if gameOvers != 2 {
		t.Fatalf("expected typed listener to fire twice, got %d", gameOvers)
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()

	var calls int
	handle := bus.Subscribe(func(Event) { calls++ })
	typedHandle := bus.SubscribeTyped(EventCheatOutcome, func(Event) { calls++ })

	bus.Publish(NewEvent(EventCheatOutcome, "m1", SeatPlayer))
	if calls != 2 {
		t.Fatalf("expected both listeners to fire, got %d", calls)
	}

	bus.Unsubscribe(handle)
	bus.Unsubscribe(typedHandle)

	bus.Publish(NewEvent(EventCheatOutcome, "m1", SeatPlayer))
	if calls != 2 {
		t.Fatalf("expected no further calls after unsubscribe, got %d", calls)
	}
}

func TestEventBusNilListenerRejected(t *testing.T) {
	bus := NewEventBus()
	if handle := bus.Subscribe(nil); handle != -1 {
		t.Fatalf("expected -1 handle for nil listener, got %d", handle)
	}
	if handle := bus.SubscribeTyped(EventGameOver, nil); handle != -1 {
		t.Fatalf("expected -1 handle for nil typed listener, got %d", handle)
	}
}
