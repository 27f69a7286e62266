package game

import (
	"fmt"

	"github.com/wizardswar/wizards-war-go/internal/game/rules"
	"go.uber.org/zap"
)

// CheatID identifies one entry of the cheat catalog.
type CheatID string

const (
	// CheatPullOutSeeds spends a seed to distract the bird. It is the one
	// unobserved action in the catalog.
	CheatPullOutSeeds CheatID = "pull_out_seeds"

	// Physical cheats, watched by the bird.

	// CheatSleeve stashes a hand card up the sleeve; it returns on the
	// next hand refill.
	CheatSleeve CheatID = "sleeve"
	// CheatSwapCard exchanges one of the player's hand cards for one of
	// the opponent's.
	CheatSwapCard CheatID = "swap_card"
	// CheatPeek reveals the top of the player's draw pile and may swap a
	// hand card for it.
	CheatPeek CheatID = "peek"
	// CheatLookOverShoulder reveals the opponent's hand for the round.
	CheatLookOverShoulder CheatID = "look_over_shoulder"

	// Magic cheats, watched by the magician.

	// CheatDejaVu keeps initiative with its current holder for the next
	// round.
	CheatDejaVu CheatID = "deja_vu"
	// CheatInnerEye reveals the opponent's hand for the round.
	CheatInnerEye CheatID = "inner_eye"
	// CheatHackOrdering inverts the rank ordering until the next draw.
	CheatHackOrdering CheatID = "hack_ordering"
)

// CheatClass groups cheats by the observer that can catch them.
type CheatClass int

const (
	// ClassFree actions have no observer and never fail detection.
	ClassFree CheatClass = iota
	// ClassPhysical cheats are caught by an attentive bird and must be
	// unlocked before use.
	ClassPhysical
	// ClassMagic cheats are caught by an attentive magician and are gated
	// by mana alone.
	ClassMagic
)

func (c CheatClass) String() string {
	switch c {
	case ClassFree:
		return "FREE"
	case ClassPhysical:
		return "PHYSICAL"
	case ClassMagic:
		return "MAGIC"
	}
	return fmt.Sprintf("CLASS_%d", int(c))
}

// Observer returns the observer watching this class, if any.
func (c CheatClass) Observer() (Observer, bool) {
	switch c {
	case ClassPhysical:
		return ObserverBird, true
	case ClassMagic:
		return ObserverMagician, true
	}
	return 0, false
}

// CheatSpec is one catalog entry.
type CheatSpec struct {
	ID       CheatID
	Class    CheatClass
	SeedCost int
	ManaCost int
}

// cheatCatalog is ordered; the Het word unlocks physical cheats in this
// order.
var cheatCatalog = []CheatSpec{
	{ID: CheatPullOutSeeds, Class: ClassFree, SeedCost: 1},
	{ID: CheatSleeve, Class: ClassPhysical},
	{ID: CheatSwapCard, Class: ClassPhysical, SeedCost: 1},
	{ID: CheatPeek, Class: ClassPhysical, SeedCost: 1},
	{ID: CheatLookOverShoulder, Class: ClassPhysical},
	{ID: CheatDejaVu, Class: ClassMagic, ManaCost: 1},
	{ID: CheatInnerEye, Class: ClassMagic, ManaCost: 1},
	{ID: CheatHackOrdering, Class: ClassMagic, ManaCost: 2},
}

// CheatCatalog returns the ordered catalog.
func CheatCatalog() []CheatSpec {
	out := make([]CheatSpec, len(cheatCatalog))
	copy(out, cheatCatalog)
	return out
}

// LookupCheat finds a catalog entry by id.
func LookupCheat(id CheatID) (CheatSpec, bool) {
	for _, spec := range cheatCatalog {
		if spec.ID == id {
			return spec, true
		}
	}
	return CheatSpec{}, false
}

// CheatTarget carries the per-cheat parameters of an attempt.
type CheatTarget struct {
	// HandIndex selects a card in the player's hand (sleeve, swap_card,
	// peek with swap).
	HandIndex int
	// OpponentIndex selects a card in the opponent's hand (swap_card).
	OpponentIndex int
	// SwapWithTop asks peek to exchange the selected hand card for the
	// revealed pile top.
	SwapWithTop bool
}

// CheatResult is the outcome of one attempt.
type CheatResult string

const (
	CheatSucceeded CheatResult = "SUCCEEDED"
	CheatRejected  CheatResult = "REJECTED"
	CheatCaught    CheatResult = "CAUGHT"
)

// Rejection reasons carried on the CheatOutcome event.
const (
	RejectUnknownCheat      = "unknown cheat"
	RejectWrongPhase        = "not the player's play window"
	RejectMatchOver         = "match is over"
	RejectLocked            = "cheat not unlocked"
	RejectInsufficientSeeds = "not enough seeds"
	RejectInsufficientMana  = "not enough mana"
	RejectInvalidTarget     = "invalid target"
)

// handleCheatAttempt runs the full attempt pipeline: phase gate, unlock
// gate, resource gate, target validation, observer check, then commit. A
// rejected attempt leaves the match untouched; a caught attempt ends it
// without applying the effect or spending the cost.
func (m *Match) handleCheatAttempt(id CheatID, target CheatTarget) {
	spec, known := LookupCheat(id)
	if !known {
		m.emitCheatOutcome(id, CheatRejected, RejectUnknownCheat)
		return
	}
	if m.over {
		m.emitCheatOutcome(id, CheatRejected, RejectMatchOver)
		return
	}
	if res := m.turn.CheckCheatWindow(rules.SeatPlayer); !res.Legal {
		m.emitCheatOutcome(id, CheatRejected, RejectWrongPhase)
		return
	}

	player := m.sides[rules.SeatPlayer]

	if spec.Class == ClassPhysical && !player.unlocked[id] {
		m.emitCheatOutcome(id, CheatRejected, RejectLocked)
		return
	}
	if player.seeds < spec.SeedCost {
		m.emitCheatOutcome(id, CheatRejected, RejectInsufficientSeeds)
		return
	}
	if player.mana < spec.ManaCost {
		m.emitCheatOutcome(id, CheatRejected, RejectInsufficientMana)
		return
	}
	if reason, ok := m.validateCheatTarget(id, target); !ok {
		m.emitCheatOutcome(id, CheatRejected, reason)
		return
	}

	if observer, watched := spec.Class.Observer(); watched && !m.distractions.IsDistracted(observer) {
		m.emitCheatOutcome(id, CheatCaught, fmt.Sprintf("seen by the %s", observer))
		m.endMatch(EndCaughtCheating, rules.SeatPlayer)
		return
	}

	player.seeds -= spec.SeedCost
	player.mana -= spec.ManaCost
	m.applyCheatEffect(id, target)
	m.emitCheatOutcome(id, CheatSucceeded, "")

	m.logger.Debug("cheat succeeded",
		zap.String("match_id", m.id),
		zap.String("cheat", string(id)),
	)
}

// validateCheatTarget checks the target without mutating anything, so a
// rejection costs nothing.
func (m *Match) validateCheatTarget(id CheatID, target CheatTarget) (string, bool) {
	player := m.sides[rules.SeatPlayer]
	oppo := m.sides[rules.SeatOpponent]

	switch id {
	case CheatSleeve:
		if player.sleeved != nil {
			return RejectInvalidTarget + ": sleeve already holds a card", false
		}
		if target.HandIndex < 0 || target.HandIndex >= len(player.hand) {
			return RejectInvalidTarget, false
		}
	case CheatSwapCard:
		if target.HandIndex < 0 || target.HandIndex >= len(player.hand) {
			return RejectInvalidTarget, false
		}
		if target.OpponentIndex < 0 || target.OpponentIndex >= len(oppo.hand) {
			return RejectInvalidTarget, false
		}
	case CheatPeek:
		if player.draw.Len() == 0 {
			return RejectInvalidTarget + ": draw pile is empty", false
		}
		if target.SwapWithTop && (target.HandIndex < 0 || target.HandIndex >= len(player.hand)) {
			return RejectInvalidTarget, false
		}
	}
	return "", true
}

// applyCheatEffect commits an already-validated, already-paid-for cheat.
func (m *Match) applyCheatEffect(id CheatID, target CheatTarget) {
	player := m.sides[rules.SeatPlayer]
	oppo := m.sides[rules.SeatOpponent]

	switch id {
	case CheatPullOutSeeds:
		change := m.distractions.Distract(ObserverBird, m.rules.SeedDistractionRounds)
		m.emitDistractionChanged(change)

	case CheatSleeve:
		card := player.hand[target.HandIndex]
		player.hand = append(player.hand[:target.HandIndex], player.hand[target.HandIndex+1:]...)
		player.sleeved = &card

	case CheatSwapCard:
		player.hand[target.HandIndex], oppo.hand[target.OpponentIndex] =
			oppo.hand[target.OpponentIndex], player.hand[target.HandIndex]

	case CheatPeek:
		top, _ := player.draw.Peek()
		m.emitSimple(rules.EventPileTopRevealed, rules.SeatPlayer, func(e *rules.Event) {
			e.Cards = []string{top.String()}
			e.Description = fmt.Sprintf("pile top is %s", top)
		})
		if target.SwapWithTop {
			old, _ := player.draw.ReplaceTop(player.hand[target.HandIndex])
			player.hand[target.HandIndex] = old
		}

	case CheatLookOverShoulder, CheatInnerEye:
		m.revealOpponent = true
		m.emitSimple(rules.EventHandRevealed, rules.SeatOpponent, func(e *rules.Event) {
			e.Cards = cardCodes(oppo.hand)
			e.Description = "opponent hand revealed"
		})

	case CheatDejaVu:
		m.turn.HoldInitiative()

	case CheatHackOrdering:
		m.orderingHacked = true
	}
}

func (m *Match) emitCheatOutcome(id CheatID, result CheatResult, reason string) {
	m.emitSimple(rules.EventCheatOutcome, rules.SeatPlayer, func(e *rules.Event) {
		e.CheatID = string(id)
		e.Result = string(result)
		e.Reason = reason
		e.Description = fmt.Sprintf("cheat %s: %s", id, result)
	})
}

// handleUseItem consumes a one-shot table interactable, distracting the
// bird for the configured item window.
func (m *Match) handleUseItem(itemID string) {
	if m.over {
		m.emitSimple(rules.EventItemUsed, rules.SeatPlayer, func(e *rules.Event) {
			e.Result = string(CheatRejected)
			e.Reason = RejectMatchOver
			e.Description = fmt.Sprintf("item %s rejected", itemID)
		})
		return
	}
	if available, known := m.items[itemID]; !known || !available {
		m.emitSimple(rules.EventItemUsed, rules.SeatPlayer, func(e *rules.Event) {
			e.Result = string(CheatRejected)
			e.Reason = "item not available"
			e.Description = fmt.Sprintf("item %s rejected", itemID)
		})
		return
	}

	m.items[itemID] = false
	m.emitSimple(rules.EventItemUsed, rules.SeatPlayer, func(e *rules.Event) {
		e.Result = string(CheatSucceeded)
		e.Description = fmt.Sprintf("item %s used", itemID)
	})
	change := m.distractions.Distract(ObserverBird, m.rules.ItemDistractionRounds)
	m.emitDistractionChanged(change)
}
