package rules

import "fmt"

// Seat identifies one of the two participants at the table.
type Seat int

const (
	SeatPlayer Seat = iota
	SeatOpponent
)

var seatNames = map[Seat]string{
	SeatPlayer:   "PLAYER",
	SeatOpponent: "OPPONENT",
}

func (s Seat) String() string {
	if name, ok := seatNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SEAT_%d", int(s))
}

// Other returns the seat across the table.
func (s Seat) Other() Seat {
	if s == SeatPlayer {
		return SeatOpponent
	}
	return SeatPlayer
}

// Phase represents the stages a round moves through.
type Phase int

const (
	PhaseAwaitingInitiativePlay Phase = iota
	PhaseAwaitingResponsePlay
	PhaseComparing
	PhaseWarEscalation
	PhaseRoundComplete
	PhaseMatchOver
)

var phaseNames = map[Phase]string{
	PhaseAwaitingInitiativePlay: "AWAITING_INITIATIVE_PLAY",
	PhaseAwaitingResponsePlay:   "AWAITING_RESPONSE_PLAY",
	PhaseComparing:              "COMPARING",
	PhaseWarEscalation:          "WAR_ESCALATION",
	PhaseRoundComplete:          "ROUND_COMPLETE",
	PhaseMatchOver:              "MATCH_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// TurnManager tracks the round number, the current phase and which seat
// holds initiative. Initiative alternates after every completed round
// unless a hold has been scheduled for the current round.
type TurnManager struct {
	phase      Phase
	round      int
	initiative Seat
	holdNext   bool
}

// NewTurnManager creates a turn manager at round 1 with the given seat
// holding initiative.
func NewTurnManager(first Seat) *TurnManager {
	return &TurnManager{
		phase:      PhaseAwaitingInitiativePlay,
		round:      1,
		initiative: first,
	}
}

// Phase returns the phase currently in progress.
func (tm *TurnManager) Phase() Phase {
	return tm.phase
}

// Round returns the current round number (1-based).
func (tm *TurnManager) Round() int {
	return tm.round
}

// Initiative returns the seat that plays first this round.
func (tm *TurnManager) Initiative() Seat {
	return tm.initiative
}

// SetPhase moves the machine to the given phase.
func (tm *TurnManager) SetPhase(p Phase) {
	tm.phase = p
}

// ExpectedActor returns the seat whose card play is awaited. Only
// meaningful during the two awaiting phases.
func (tm *TurnManager) ExpectedActor() Seat {
	if tm.phase == PhaseAwaitingResponsePlay {
		return tm.initiative.Other()
	}
	return tm.initiative
}

// HoldInitiative schedules the initiative flip of the current round to be
// skipped. The hold consumes itself at round completion.
func (tm *TurnManager) HoldInitiative() {
	tm.holdNext = true
}

// InitiativeHeld reports whether a hold is pending for this round.
func (tm *TurnManager) InitiativeHeld() bool {
	return tm.holdNext
}

// CompleteRound advances to the next round, flipping initiative unless a
// hold was scheduled, and resets the phase for the next initiative play.
func (tm *TurnManager) CompleteRound() {
	tm.round++
	if tm.holdNext {
		tm.holdNext = false
	} else {
		tm.initiative = tm.initiative.Other()
	}
	tm.phase = PhaseAwaitingInitiativePlay
}
