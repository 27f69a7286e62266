package game_test

import (
	"testing"

	"github.com/wizardswar/wizards-war-go/internal/game"
)

func card(rank int) game.Card {
	return game.Card{Rank: game.Rank(rank), Color: game.ColorJade}
}

func TestNoviceAlwaysPlaysFront(t *testing.T) {
	s := game.NoviceStrategy{}
	facing := card(5)
	if got := s.ChooseCard([]game.Card{card(9), card(1)}, &facing); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestCunningAnswersWithCheapestWinner(t *testing.T) {
	s := game.CunningStrategy{}
	facing := card(5)
	hand := []game.Card{card(12), card(6), card(3)}
	if got := s.ChooseCard(hand, &facing); got != 1 {
		t.Errorf("should answer a 5 with the 6, got index %d", got)
	}
}

// Facing a 12, the 0 is the winning answer under the wraparound rule.
func TestCunningUsesWraparound(t *testing.T) {
	s := game.CunningStrategy{}
	facing := card(12)
	hand := []game.Card{card(5), card(0), card(11)}
	if got := s.ChooseCard(hand, &facing); got != 1 {
		t.Errorf("should answer a 12 with the 0, got index %d", got)
	}
}

func TestCunningShedsWeakestWhenOutmatched(t *testing.T) {
	s := game.CunningStrategy{}
	facing := card(11)
	hand := []game.Card{card(9), card(2), card(7)}
	if got := s.ChooseCard(hand, &facing); got != 1 {
		t.Errorf("should shed the 2, got index %d", got)
	}
}

func TestCunningLeadsWithWeakest(t *testing.T) {
	s := game.CunningStrategy{}
	hand := []game.Card{card(9), card(4), card(7)}
	if got := s.ChooseCard(hand, nil); got != 1 {
		t.Errorf("should lead the 4, got index %d", got)
	}
}

func TestNewStrategySelection(t *testing.T) {
	if game.NewStrategy("novice").Name() != "novice" {
		t.Error("expected the novice strategy")
	}
	if game.NewStrategy("anything-else").Name() != "cunning" {
		t.Error("expected the cunning fallback")
	}
}
