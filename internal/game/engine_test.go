package game_test

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/wizardswar/wizards-war-go/internal/game"
	"github.com/wizardswar/wizards-war-go/internal/game/rules"
)

func TestEngineStartMatchAndView(t *testing.T) {
	engine := game.NewEngine(zaptest.NewLogger(t))

	matchID, events, err := engine.StartMatch(game.MatchOptions{})
	if err != nil {
		t.Fatalf("starting match: %v", err)
	}
	if matchID == "" {
		t.Fatal("expected a match id")
	}

	var sawStart, sawDraw bool
	for _, e := range events {
		switch e.Type {
		case rules.EventMatchStarted:
			sawStart = true
		case rules.EventCardsDrawn:
			sawDraw = true
		}
	}
	if !sawStart || !sawDraw {
		t.Fatalf("opening events missing: start=%t draw=%t", sawStart, sawDraw)
	}

	view, err := engine.View(matchID)
	if err != nil {
		t.Fatalf("getting view: %v", err)
	}
	if len(view.Player.Hand) != 3 {
		t.Errorf("expected an opening hand of 3, got %d", len(view.Player.Hand))
	}
	for _, c := range view.Opponent.Hand {
		if c.Code != "??" {
			t.Errorf("opponent hand should be face-down, got %s", c.Code)
		}
	}
	if view.Player.PileSize != 23 || view.Opponent.PileSize != 23 {
		t.Errorf("expected 23-card piles, got %d/%d", view.Player.PileSize, view.Opponent.PileSize)
	}
}

func TestEngineAppliesCommandsAndNotifies(t *testing.T) {
	engine := game.NewEngine(zaptest.NewLogger(t))

	notifications := make(chan game.MatchNotification, 8)
	engine.SetNotificationHandler(func(n game.MatchNotification) {
		notifications <- n
	})

	matchID, _, err := engine.StartMatch(game.MatchOptions{})
	if err != nil {
		t.Fatalf("starting match: %v", err)
	}

	events, err := engine.Apply(matchID, game.Command{
		Kind: game.CommandPlayCard,
		Seat: rules.SeatPlayer,
	})
	if err != nil {
		t.Fatalf("applying command: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected events from the play")
	}

	// Start and apply notifications both arrive.
	for i := 0; i < 2; i++ {
		select {
		case n := <-notifications:
			if n.MatchID != matchID {
				t.Errorf("notification for wrong match %s", n.MatchID)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for notification")
		}
	}
}

func TestEngineUnknownMatch(t *testing.T) {
	engine := game.NewEngine(zaptest.NewLogger(t))

	if _, err := engine.View("nope"); err == nil {
		t.Error("expected an error for an unknown match view")
	}
	if _, err := engine.Apply("nope", game.Command{Kind: game.CommandPlayCard}); err == nil {
		t.Error("expected an error for an unknown match command")
	}
}

func TestEngineListAndRemove(t *testing.T) {
	engine := game.NewEngine(zaptest.NewLogger(t))

	matchID, _, err := engine.StartMatch(game.MatchOptions{})
	if err != nil {
		t.Fatalf("starting match: %v", err)
	}

	listings := engine.ListMatches()
	if len(listings) != 1 || listings[0].MatchID != matchID || listings[0].Over {
		t.Fatalf("unexpected listings %v", listings)
	}

	engine.RemoveMatch(matchID)
	if got := engine.ListMatches(); len(got) != 0 {
		t.Fatalf("expected no matches after removal, got %v", got)
	}
}
