package game

import (
	"testing"

	"github.com/wizardswar/wizards-war-go/internal/game/rules"
)

func TestRefillDrawsThreeWhenHandEmpty(t *testing.T) {
	p := newParticipantState(rules.SeatPlayer, []Card{mk(1), mk(2), mk(3), mk(4)})

	drawn, err := p.refillIfEmpty()
	if err != nil {
		t.Fatalf("refill failed: %v", err)
	}
	if len(drawn) != 3 || len(p.hand) != 3 {
		t.Fatalf("expected 3 drawn, got %d (hand %d)", len(drawn), len(p.hand))
	}
	if p.draw.Len() != 1 {
		t.Fatalf("expected 1 card left in pile, got %d", p.draw.Len())
	}

	// Non-empty hand: no refill.
	drawn, err = p.refillIfEmpty()
	if err != nil || drawn != nil {
		t.Fatalf("refill on non-empty hand should be a no-op, got %v %v", drawn, err)
	}
}

// A pending sleeve stash returns first on refill, allowing a 4-card hand
// for that round.
func TestRefillReturnsSleevedCardFirst(t *testing.T) {
	p := newParticipantState(rules.SeatPlayer, []Card{mk(1), mk(2), mk(3), mk(4)})
	stash := mk(9)
	p.sleeved = &stash

	drawn, err := p.refillIfEmpty()
	if err != nil {
		t.Fatalf("refill failed: %v", err)
	}
	if len(drawn) != 4 || len(p.hand) != 4 {
		t.Fatalf("expected a 4-card hand, got drawn=%d hand=%d", len(drawn), len(p.hand))
	}
	if p.hand[0] != stash {
		t.Errorf("sleeved card should lead the hand, got %v", p.hand[0])
	}
	if p.sleeved != nil {
		t.Error("sleeve should be empty after the return")
	}
}

func TestRefillSignalsExhaustion(t *testing.T) {
	p := newParticipantState(rules.SeatPlayer, nil)
	if _, err := p.refillIfEmpty(); err != ErrPileExhausted {
		t.Fatalf("expected ErrPileExhausted, got %v", err)
	}
}

func TestTakeAnyCardPrefersHandThenPile(t *testing.T) {
	p := newParticipantState(rules.SeatPlayer, []Card{mk(1), mk(2)})
	p.hand = []Card{mk(7)}

	card, ok := p.takeAnyCard()
	if !ok || card != mk(7) {
		t.Fatalf("expected the hand card, got %v ok=%t", card, ok)
	}
	card, ok = p.takeAnyCard()
	if !ok || card != mk(1) {
		t.Fatalf("expected the pile top, got %v ok=%t", card, ok)
	}
	p.draw.Draw(1)
	if _, ok := p.takeAnyCard(); ok {
		t.Fatal("empty hand and pile cannot supply a card")
	}
}

func TestScoreAndRemainingCards(t *testing.T) {
	p := newParticipantState(rules.SeatPlayer, []Card{mk(1), mk(2)})
	p.hand = []Card{mk(3)}
	p.wins.Push(mk(4), mk(5))
	p.bonusPoints = 2
	stash := mk(6)
	p.sleeved = &stash

	if got := p.score(); got != 4 {
		t.Errorf("score: got %d, want 4", got)
	}
	// 1 hand + 2 pile + 1 sleeve
	if got := p.remainingCards(); got != 4 {
		t.Errorf("remaining cards: got %d, want 4", got)
	}
	if p.outOfCards() {
		t.Error("participant still holds cards")
	}
}
