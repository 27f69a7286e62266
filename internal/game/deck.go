package game

import "fmt"

// ErrPileExhausted signals a draw attempted against an empty pile while the
// owner's hand is also empty.
var ErrPileExhausted = fmt.Errorf("pile exhausted")

// Pile is an ordered sequence of cards. Index 0 is the top. Draw piles are
// consumed FIFO from the top; win piles only ever grow.
type Pile struct {
	cards []Card
}

// NewPile creates a pile holding the given cards, top first.
func NewPile(cards []Card) *Pile {
	owned := make([]Card, len(cards))
	copy(owned, cards)
	return &Pile{cards: owned}
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int {
	return len(p.cards)
}

// Draw removes and returns up to n cards from the top of the pile.
func (p *Pile) Draw(n int) []Card {
	if n > len(p.cards) {
		n = len(p.cards)
	}
	drawn := make([]Card, n)
	copy(drawn, p.cards[:n])
	p.cards = p.cards[n:]
	return drawn
}

// Peek returns the top card without removing it.
func (p *Pile) Peek() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[0], true
}

// ReplaceTop swaps the top card for the given one and returns the old top.
// Used by the peek cheat's optional swap.
func (p *Pile) ReplaceTop(card Card) (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	old := p.cards[0]
	p.cards[0] = card
	return old, true
}

// Push appends cards to the pile. Win piles are push-only.
func (p *Pile) Push(cards ...Card) {
	p.cards = append(p.cards, cards...)
}

// Cards returns a copy of the pile's contents, top first.
func (p *Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// standardWordSlots places exactly one of each Word of Power into the
// 52-card universe, at fixed positions in canonical order (rank ascending,
// color ascending within rank). Three words land in each half of the split.
var standardWordSlots = map[int]Word{
	4:  WordEgeq,
	13: WordGeh,
	22: WordHet,
	31: WordMeb,
	40: WordQube,
	49: WordZihbm,
}

// StandardDecks builds the fixed 2x26 match deal: the full 13-rank,
// 4-color universe split in half by rank. The player's pile holds the low
// half sorted ascending (weakest on top); the opponent's pile holds the
// high half sorted descending (strongest on top).
func StandardDecks() (player, opponent []Card) {
	universe := make([]Card, 0, NumRanks*int(NumColors))
	for rank := MinRank; rank <= MaxRank; rank++ {
		for color := Color(0); color < NumColors; color++ {
			card := Card{Rank: rank, Color: color}
			if word, ok := standardWordSlots[len(universe)]; ok {
				card.Word = word
			}
			universe = append(universe, card)
		}
	}

	half := len(universe) / 2
	player = make([]Card, half)
	copy(player, universe[:half])

	opponent = make([]Card, 0, half)
	for i := len(universe) - 1; i >= half; i-- {
		opponent = append(opponent, universe[i])
	}
	return player, opponent
}
