package game

import "fmt"

// DeltaKind classifies a resource change granted by a Word of Power.
type DeltaKind int

const (
	// DeltaSeeds adds Amount seeds to the winner.
	DeltaSeeds DeltaKind = iota
	// DeltaMana adds Amount mana to the winner.
	DeltaMana
	// DeltaUnlockCheat unlocks the first still-locked physical cheat in
	// catalog order for the winner.
	DeltaUnlockCheat
	// DeltaMagicianDistraction sets the magician distracted for exactly
	// Amount following rounds.
	DeltaMagicianDistraction
	// DeltaDoublePoints doubles the points awarded for the current
	// round's win.
	DeltaDoublePoints
)

func (k DeltaKind) String() string {
	switch k {
	case DeltaSeeds:
		return "SEEDS"
	case DeltaMana:
		return "MANA"
	case DeltaUnlockCheat:
		return "UNLOCK_CHEAT"
	case DeltaMagicianDistraction:
		return "MAGICIAN_DISTRACTION"
	case DeltaDoublePoints:
		return "DOUBLE_POINTS"
	}
	return fmt.Sprintf("DELTA_%d", int(k))
}

// ResourceDelta is one effect of a winning Word of Power.
type ResourceDelta struct {
	Kind   DeltaKind
	Amount int
}

// WordDeltas is the Word-of-Power effect engine: a pure mapping from the
// winning card's word to the resource deltas granted to the round winner.
// It is consulted only for the winning card, and only when that card
// carries a word.
//
// Zihbm's effect is left undefined by the design documents; it resolves to
// no deltas rather than failing.
func WordDeltas(word Word) []ResourceDelta {
	switch word {
	case WordEgeq:
		return []ResourceDelta{{Kind: DeltaSeeds, Amount: 1}}
	case WordGeh:
		return []ResourceDelta{{Kind: DeltaMana, Amount: 1}}
	case WordHet:
		return []ResourceDelta{{Kind: DeltaUnlockCheat, Amount: 1}}
	case WordMeb:
		return []ResourceDelta{{Kind: DeltaMagicianDistraction, Amount: 1}}
	case WordQube:
		return []ResourceDelta{{Kind: DeltaDoublePoints, Amount: 1}}
	default:
		return nil
	}
}
