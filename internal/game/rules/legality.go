package rules

// LegalityResult is the outcome of a command-window check.
type LegalityResult struct {
	Legal  bool
	Reason string
}

// Legal returns a passing result.
func Legal() LegalityResult {
	return LegalityResult{Legal: true}
}

// Illegal returns a failing result with the given reason.
func Illegal(reason string) LegalityResult {
	return LegalityResult{Reason: reason}
}

// CheckCardPlay validates that the given seat may play a card right now:
// the phase must be awaiting a play and the seat must be the expected
// actor.
func (tm *TurnManager) CheckCardPlay(actor Seat) LegalityResult {
	switch tm.phase {
	case PhaseAwaitingInitiativePlay, PhaseAwaitingResponsePlay:
	case PhaseMatchOver:
		return Illegal("match is over")
	default:
		return Illegal("no card play is awaited during " + tm.phase.String())
	}
	if tm.ExpectedActor() != actor {
		return Illegal(actor.String() + " played out of turn")
	}
	return Legal()
}

// CheckCheatWindow validates that the given seat may attempt a cheat right
// now. Cheats are legal only during the seat's own play window, never
// during the other seat's, so a cheat attempt and a card play cannot race.
func (tm *TurnManager) CheckCheatWindow(actor Seat) LegalityResult {
	if tm.phase == PhaseMatchOver {
		return Illegal("match is over")
	}
	if tm.phase != PhaseAwaitingInitiativePlay && tm.phase != PhaseAwaitingResponsePlay {
		return Illegal("cheats are only legal during a play window")
	}
	if tm.ExpectedActor() != actor {
		return Illegal("not " + actor.String() + "'s play window")
	}
	return Legal()
}
