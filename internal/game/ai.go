package game

// Strategy decides which hand card the scripted opponent plays.
type Strategy interface {
	Name() string
	// ChooseCard returns the hand index to play. facing is the card the
	// opponent must answer, nil when the opponent leads the round.
	ChooseCard(hand []Card, facing *Card) int
}

// NewStrategy returns the named strategy, defaulting to cunning.
func NewStrategy(name string) Strategy {
	switch name {
	case "novice":
		return NoviceStrategy{}
	default:
		return CunningStrategy{}
	}
}

// NoviceStrategy always plays the front of the hand.
type NoviceStrategy struct{}

func (NoviceStrategy) Name() string { return "novice" }

func (NoviceStrategy) ChooseCard(hand []Card, facing *Card) int {
	return 0
}

// CunningStrategy answers with the cheapest winning card it holds, and
// otherwise sheds its weakest card. Leading, it also plays its weakest.
type CunningStrategy struct{}

func (CunningStrategy) Name() string { return "cunning" }

func (CunningStrategy) ChooseCard(hand []Card, facing *Card) int {
	if len(hand) == 0 {
		return 0
	}

	if facing != nil {
		best := -1
		for i, c := range hand {
			if c.Beats(*facing) != OutcomeWin {
				continue
			}
			if best == -1 || weaker(c, hand[best]) {
				best = i
			}
		}
		if best != -1 {
			return best
		}
	}

	lowest := 0
	for i := 1; i < len(hand); i++ {
		if weaker(hand[i], hand[lowest]) {
			lowest = i
		}
	}
	return lowest
}

// weaker orders cards by the wraparound rank relation, falling back to the
// numeric rank for unrelated pairs.
func weaker(a, b Card) bool {
	switch a.Beats(b) {
	case OutcomeLoss:
		return true
	case OutcomeWin:
		return false
	}
	return a.Rank < b.Rank
}
