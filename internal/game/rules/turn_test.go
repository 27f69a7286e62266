package rules

import "testing"

func TestTurnManagerInitialState(t *testing.T) {
	tm := NewTurnManager(SeatPlayer)

	if tm.Round() != 1 {
		t.Fatalf("expected round 1, got %d", tm.Round())
	}
	if tm.Phase() != PhaseAwaitingInitiativePlay {
		t.Fatalf("expected awaiting initiative play, got %s", tm.Phase())
	}
	if tm.Initiative() != SeatPlayer {
		t.Fatalf("expected player initiative, got %s", tm.Initiative())
	}
	if tm.ExpectedActor() != SeatPlayer {
		t.Fatalf("expected player to act first, got %s", tm.ExpectedActor())
	}
}

func TestTurnManagerExpectedActorDuringResponse(t *testing.T) {
	tm := NewTurnManager(SeatOpponent)
	tm.SetPhase(PhaseAwaitingResponsePlay)

	if tm.ExpectedActor() != SeatPlayer {
		t.Fatalf("expected player to respond, got %s", tm.ExpectedActor())
	}
}

func TestTurnManagerInitiativeAlternates(t *testing.T) {
	tm := NewTurnManager(SeatPlayer)

	tm.CompleteRound()
	if tm.Initiative() != SeatOpponent {
		t.Fatalf("expected initiative to flip to opponent, got %s", tm.Initiative())
	}
	if tm.Round() != 2 {
		t.Fatalf("expected round 2, got %d", tm.Round())
	}

	tm.CompleteRound()
	if tm.Initiative() != SeatPlayer {
		t.Fatalf("expected initiative back to player, got %s", tm.Initiative())
	}
}

func TestTurnManagerHoldInitiativeConsumesItself(t *testing.T) {
	tm := NewTurnManager(SeatPlayer)

	tm.HoldInitiative()
	if !tm.InitiativeHeld() {
		t.Fatalf("expected hold to be pending")
	}

	tm.CompleteRound()
	if tm.Initiative() != SeatPlayer {
		t.Fatalf("expected initiative kept by player, got %s", tm.Initiative())
	}
	if tm.InitiativeHeld() {
		t.Fatalf("expected hold to be consumed")
	}

	// The hold applies to a single round only.
	tm.CompleteRound()
	if tm.Initiative() != SeatOpponent {
		t.Fatalf("expected initiative to flip after consumed hold, got %s", tm.Initiative())
	}
}

func TestSeatOther(t *testing.T) {
	if SeatPlayer.Other() != SeatOpponent {
		t.Fatalf("expected opponent across from player")
	}
	if SeatOpponent.Other() != SeatPlayer {
		t.Fatalf("expected player across from opponent")
	}
}
