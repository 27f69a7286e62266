package game

import (
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/wizardswar/wizards-war-go/internal/game/rules"
)

// Replaying a match's command log against the same options reproduces the
// final state exactly.
func TestReplayReproducesMatch(t *testing.T) {
	opts := MatchOptions{
		PlayerDeck: []Card{mk(3), mkw(11, WordEgeq), mk(7), mk(4), mk(8), mk(2)},
		OppoDeck:   []Card{mk(5), mk(2), mk(9), mk(6), mk(10), mk(1)},
	}

	original, err := NewMatch("original", opts, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("creating match: %v", err)
	}
	original.flush()

	for plays := 0; !original.Over(); plays++ {
		if plays > 50 {
			t.Fatal("match did not terminate")
		}
		if _, err := original.Apply(Command{Kind: CommandPlayCard, Seat: rules.SeatPlayer}); err != nil {
			t.Fatalf("playing: %v", err)
		}
	}

	replayed, err := ReplayMatch("replayed", opts, original.History(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("replaying: %v", err)
	}

	if replayed.EndReason() != original.EndReason() {
		t.Errorf("end reason diverged: %s vs %s", replayed.EndReason(), original.EndReason())
	}

	origView := original.View()
	replView := replayed.View()
	origView.MatchID, replView.MatchID = "", ""
	if !reflect.DeepEqual(origView, replView) {
		t.Errorf("views diverged:\noriginal: %+v\nreplayed: %+v", origView, replView)
	}

	if original.Stats() != replayed.Stats() {
		t.Errorf("stats diverged: %+v vs %+v", original.Stats(), replayed.Stats())
	}
}

func TestReplayRejectsDivergentLog(t *testing.T) {
	opts := MatchOptions{
		PlayerDeck: []Card{mk(3), mk(7), mk(11)},
		OppoDeck:   []Card{mk(5), mk(2), mk(9)},
	}

	bogus := []Command{{Kind: CommandPlayCard, Seat: rules.SeatPlayer, HandIndex: 99}}
	if _, err := ReplayMatch("bogus", opts, bogus, zaptest.NewLogger(t)); err == nil {
		t.Fatal("expected a replay error for an out-of-range play")
	}
}
