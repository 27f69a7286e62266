package game_test

import (
	"testing"

	"github.com/wizardswar/wizards-war-go/internal/game"
)

// TestRankOrderExhaustive checks the full 13x13 comparison grid: ties on
// equal ranks, the 0/12 wraparound both ways, and higher-wins everywhere
// else.
func TestRankOrderExhaustive(t *testing.T) {
	for a := game.MinRank; a <= game.MaxRank; a++ {
		for b := game.MinRank; b <= game.MaxRank; b++ {
			var want game.BattleOutcome
			switch {
			case a == b:
				want = game.OutcomeTie
			case a == game.MinRank && b == game.MaxRank:
				want = game.OutcomeWin
			case a == game.MaxRank && b == game.MinRank:
				want = game.OutcomeLoss
			case a > b:
				want = game.OutcomeWin
			default:
				want = game.OutcomeLoss
			}
			if got := a.Beats(b); got != want {
				t.Errorf("%d vs %d: got %s, want %s", a, b, got, want)
			}
		}
	}
}

func TestRankOrderAntisymmetric(t *testing.T) {
	for a := game.MinRank; a <= game.MaxRank; a++ {
		for b := game.MinRank; b <= game.MaxRank; b++ {
			if a.Beats(b) != b.Beats(a).Invert() {
				t.Errorf("%d vs %d not antisymmetric", a, b)
			}
		}
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	cards := []game.Card{
		{Rank: 0, Color: game.ColorQuetzal, Word: game.WordMeb},
		{Rank: 12, Color: game.ColorJade},
		{Rank: 7, Color: game.ColorAmber, Word: game.WordQube},
		{Rank: 1, Color: game.ColorObsidian},
	}
	for _, card := range cards {
		parsed, err := game.ParseCard(card.String())
		if err != nil {
			t.Fatalf("parsing %q: %v", card.String(), err)
		}
		if parsed != card {
			t.Errorf("round trip %q: got %+v, want %+v", card.String(), parsed, card)
		}
	}
}

func TestParseCardRejectsMalformedCodes(t *testing.T) {
	for _, code := range []string{"", "j", "13j", "-1a", "5x", "7a:frob"} {
		if _, err := game.ParseCard(code); err == nil {
			t.Errorf("expected error for %q", code)
		}
	}
}

func TestParseDeck(t *testing.T) {
	deck, err := game.ParseDeck("3j 7o\n11a 0q:meb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deck) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(deck))
	}
	if deck[3].Word != game.WordMeb {
		t.Errorf("expected Meb on last card, got %s", deck[3].Word)
	}
}
