package game

import "github.com/wizardswar/wizards-war-go/internal/game/rules"

// EndReason is the terminal outcome of a match, from the player's
// perspective where it names a result.
type EndReason string

const (
	// EndWin: the player's score beats the opponent's.
	EndWin EndReason = "WIN"
	// EndLose: the opponent's score beats the player's.
	EndLose EndReason = "LOSE"
	// EndDraw: both sides exhausted with equal scores.
	EndDraw EndReason = "DRAW"
	// EndCaughtCheating: the player attempted a cheat under an attentive
	// observer.
	EndCaughtCheating EndReason = "CAUGHT_CHEATING"
	// EndRanOutOfCardsDuringWar: a side could not supply a card for a war
	// escalation. The GameOver event names the losing seat.
	EndRanOutOfCardsDuringWar EndReason = "RAN_OUT_OF_CARDS_DURING_WAR"
)

// evaluateOutcome checks the non-war terminal conditions: full exhaustion
// of both sides, and the early decision where the score lead exceeds every
// card still in play. It returns true when it ended the match.
func (m *Match) evaluateOutcome() bool {
	if m.over {
		return true
	}

	player := m.sides[rules.SeatPlayer]
	oppo := m.sides[rules.SeatOpponent]

	// Mutual exhaustion compares scores. A single exhausted side also ends
	// the match: it cannot play the next round, and every point it could
	// still hold is already on the table.
	if player.outOfCards() || oppo.outOfCards() {
		m.endByScore(player.score(), oppo.score())
		return true
	}

	// Early decision: winning a round captures the other side's cards too,
	// so the trailing side can still claim every card left in play. Only a
	// lead larger than all remaining cards combined is uncatchable.
	remaining := player.remainingCards() + oppo.remainingCards()
	switch lead := player.score() - oppo.score(); {
	case lead > remaining:
		m.endMatch(EndWin, rules.SeatPlayer)
		return true
	case -lead > remaining:
		m.endMatch(EndLose, rules.SeatPlayer)
		return true
	}

	return false
}

func (m *Match) endByScore(playerScore, oppoScore int) {
	switch {
	case playerScore > oppoScore:
		m.endMatch(EndWin, rules.SeatPlayer)
	case playerScore < oppoScore:
		m.endMatch(EndLose, rules.SeatPlayer)
	default:
		m.endMatch(EndDraw, rules.SeatPlayer)
	}
}
