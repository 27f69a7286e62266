package game

import (
	"fmt"

	"github.com/wizardswar/wizards-war-go/internal/game/rules"
)

// baseHandSize is the normal hand capacity. A hand may temporarily hold
// one extra card on the draw that returns a sleeved card.
const baseHandSize = 3

// participantState holds everything one side of the table owns: their
// hand, draw pile, win pile, resource counters and unlocked physical
// cheats.
type participantState struct {
	seat rules.Seat

	hand []Card
	draw *Pile
	wins *Pile

	// bonusPoints tracks points earned beyond one-per-card, e.g. the
	// Qube doubling.
	bonusPoints int

	seeds int
	mana  int

	// unlocked is the set of physical cheats available to this side.
	// Magic cheats are gated by mana only.
	unlocked map[CheatID]bool

	// sleeved is the card stashed by the sleeve cheat, returned to the
	// hand on the next refill.
	sleeved *Card
}

func newParticipantState(seat rules.Seat, deck []Card) *participantState {
	p := &participantState{
		seat:     seat,
		draw:     NewPile(deck),
		wins:     NewPile(nil),
		unlocked: make(map[CheatID]bool),
	}
	// The sleeve is the one physical cheat known from the start; the Het
	// word unlocks the rest of the catalog one at a time.
	p.unlocked[CheatSleeve] = true
	return p
}

// handCapacity is 3, or 4 while a sleeved card is waiting to come back.
func (p *participantState) handCapacity() int {
	if p.sleeved != nil {
		return baseHandSize + 1
	}
	return baseHandSize
}

// drawToHand moves up to n cards from the draw pile into the hand,
// respecting the current hand capacity. It returns the cards drawn and
// ErrPileExhausted when both pile and hand are empty.
func (p *participantState) drawToHand(n int) ([]Card, error) {
	if p.draw.Len() == 0 && len(p.hand) == 0 && p.sleeved == nil {
		return nil, ErrPileExhausted
	}
	room := p.handCapacity() - len(p.hand)
	if n > room {
		n = room
	}
	if n <= 0 {
		return nil, nil
	}
	drawn := p.draw.Draw(n)
	p.hand = append(p.hand, drawn...)
	return drawn, nil
}

// refillIfEmpty implements the round-boundary refill: when the hand is
// empty, draw 3 cards; a pending sleeve stash returns to the hand first,
// allowing 4 cards in hand for that round.
func (p *participantState) refillIfEmpty() ([]Card, error) {
	if len(p.hand) != 0 {
		return nil, nil
	}
	var returned []Card
	if p.sleeved != nil {
		card := *p.sleeved
		p.sleeved = nil
		p.hand = append(p.hand, card)
		returned = append(returned, card)
		drawn := p.draw.Draw(baseHandSize)
		p.hand = append(p.hand, drawn...)
		return append(returned, drawn...), nil
	}
	return p.drawToHand(baseHandSize)
}

// removeFromHand removes and returns the card at the given index.
func (p *participantState) removeFromHand(index int) (Card, error) {
	if index < 0 || index >= len(p.hand) {
		return Card{}, fmt.Errorf("hand index %d out of range (hand size %d)", index, len(p.hand))
	}
	card := p.hand[index]
	p.hand = append(p.hand[:index], p.hand[index+1:]...)
	return card, nil
}

// takeAnyCard supplies a card for a war escalation: front of hand if any,
// otherwise the top of the draw pile. ok is false when neither can supply.
func (p *participantState) takeAnyCard() (Card, bool) {
	if len(p.hand) > 0 {
		card := p.hand[0]
		p.hand = p.hand[1:]
		return card, true
	}
	if drawn := p.draw.Draw(1); len(drawn) == 1 {
		return drawn[0], true
	}
	return Card{}, false
}

// score is the win pile size plus any bonus points.
func (p *participantState) score() int {
	return p.wins.Len() + p.bonusPoints
}

// remainingCards counts every card this side still holds: hand, draw pile
// and sleeve. Each is worth one point to whichever side captures it.
func (p *participantState) remainingCards() int {
	n := len(p.hand) + p.draw.Len()
	if p.sleeved != nil {
		n++
	}
	return n
}

// outOfCards reports whether this side can no longer supply a card.
func (p *participantState) outOfCards() bool {
	return len(p.hand) == 0 && p.draw.Len() == 0 && p.sleeved == nil
}
