package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wizardswar/wizards-war-go/internal/game/rules"
	"go.uber.org/zap"
)

// Rules holds the tunable parameters of a match.
type Rules struct {
	// SeedDistractionRounds is how long a spent seed distracts the bird.
	SeedDistractionRounds int
	// ItemDistractionRounds is how long a table item distracts the bird.
	ItemDistractionRounds int
	// TableItems are the one-shot interactables on the table.
	TableItems []string
	// Strategy names the scripted opponent's card selection policy.
	Strategy string
}

// DefaultRules returns the standard match tuning.
func DefaultRules() Rules {
	return Rules{
		SeedDistractionRounds: 1,
		ItemDistractionRounds: 2,
		TableItems:            []string{"ashtray", "candle", "hourglass"},
		Strategy:              "cunning",
	}
}

// CommandKind discriminates inbound commands.
type CommandKind int

const (
	CommandPlayCard CommandKind = iota
	CommandAttemptCheat
	CommandUseItem
	CommandRestart
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlayCard:
		return "PLAY_CARD"
	case CommandAttemptCheat:
		return "ATTEMPT_CHEAT"
	case CommandUseItem:
		return "USE_ITEM"
	case CommandRestart:
		return "RESTART"
	}
	return fmt.Sprintf("COMMAND_%d", int(k))
}

// Command is one inbound request from the UI layer. Fields are read as the
// kind requires.
type Command struct {
	Kind      CommandKind
	Seat      rules.Seat
	HandIndex int
	Cheat     CheatID
	Target    CheatTarget
	ItemID    string
}

// Match is the single-owner state of one game. All mutation goes through
// Apply; the engine serializes calls, so no locking is needed here.
type Match struct {
	id     string
	rules  Rules
	logger *zap.Logger

	turn         *rules.TurnManager
	bus          *rules.EventBus
	sides        map[rules.Seat]*participantState
	distractions *DistractionTracker
	strategy     Strategy

	played map[rules.Seat]*Card

	// orderingHacked inverts rank comparison until the next draw.
	orderingHacked bool
	// revealOpponent exposes the opponent's hand in views until the
	// round completes.
	revealOpponent bool

	items map[string]bool

	over      bool
	endReason EndReason

	// original decks kept for restart
	playerDeck []Card
	oppoDeck   []Card

	// history holds every successfully applied command, for replay.
	history []Command

	stats *rules.MatchStatsWatcher

	pending []rules.Event
}

// MatchOptions configure a new match. Nil decks select the standard deal.
type MatchOptions struct {
	PlayerDeck []Card
	OppoDeck   []Card
	Rules      *Rules
	// Strategy overrides the named strategy from Rules when set.
	Strategy Strategy
}

// NewMatch deals a fresh match. The player holds initiative for round 1.
func NewMatch(id string, opts MatchOptions, logger *zap.Logger) (*Match, error) {
	if id == "" {
		return nil, fmt.Errorf("match id is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	playerDeck, oppoDeck := opts.PlayerDeck, opts.OppoDeck
	if playerDeck == nil && oppoDeck == nil {
		playerDeck, oppoDeck = StandardDecks()
	}
	if len(playerDeck) == 0 || len(oppoDeck) == 0 {
		return nil, fmt.Errorf("both decks must be non-empty")
	}

	matchRules := DefaultRules()
	if opts.Rules != nil {
		matchRules = *opts.Rules
	}

	m := &Match{
		id:         id,
		rules:      matchRules,
		logger:     logger,
		bus:        rules.NewEventBus(),
		playerDeck: playerDeck,
		oppoDeck:   oppoDeck,
		strategy:   opts.Strategy,
	}
	if m.strategy == nil {
		m.strategy = NewStrategy(matchRules.Strategy)
	}
	m.stats = rules.NewMatchStatsWatcher()
	m.stats.Attach(m.bus)
	m.reset()
	return m, nil
}

// reset builds the initial table state from the stored decks.
func (m *Match) reset() {
	m.turn = rules.NewTurnManager(rules.SeatPlayer)
	m.sides = map[rules.Seat]*participantState{
		rules.SeatPlayer:   newParticipantState(rules.SeatPlayer, m.playerDeck),
		rules.SeatOpponent: newParticipantState(rules.SeatOpponent, m.oppoDeck),
	}
	m.distractions = NewDistractionTracker()
	m.played = make(map[rules.Seat]*Card)
	m.orderingHacked = false
	m.revealOpponent = false
	m.over = false
	m.endReason = ""
	m.items = make(map[string]bool, len(m.rules.TableItems))
	for _, item := range m.rules.TableItems {
		m.items[item] = true
	}

	m.emitSimple(rules.EventMatchStarted, rules.SeatPlayer, func(e *rules.Event) {
		e.Description = "match started"
	})
	for _, seat := range []rules.Seat{rules.SeatPlayer, rules.SeatOpponent} {
		drawn, err := m.sides[seat].refillIfEmpty()
		if err != nil {
			// A non-empty deck cannot exhaust on the opening draw.
			m.logger.Error("opening draw failed", zap.String("match_id", m.id), zap.Error(err))
			continue
		}
		m.emitCardsDrawn(seat, drawn)
	}
}

// EventBus exposes the match's bus for subscribers (views, gateway).
func (m *Match) EventBus() *rules.EventBus {
	return m.bus
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Over reports whether the match reached a terminal outcome.
func (m *Match) Over() bool {
	return m.over
}

// EndReason returns the terminal reason, empty while the match runs.
func (m *Match) EndReason() EndReason {
	return m.endReason
}

// Apply processes one command and returns the events it produced.
// Commands are rejected, not failed, when they are illegal for the current
// phase; errors indicate malformed requests or programming errors.
func (m *Match) Apply(cmd Command) ([]rules.Event, error) {
	m.pending = m.pending[:0]

	switch cmd.Kind {
	case CommandPlayCard:
		if err := m.handlePlayCard(cmd.Seat, cmd.HandIndex); err != nil {
			return m.flush(), err
		}
	case CommandAttemptCheat:
		m.handleCheatAttempt(cmd.Cheat, cmd.Target)
	case CommandUseItem:
		m.handleUseItem(cmd.ItemID)
	case CommandRestart:
		if !m.over {
			return m.flush(), fmt.Errorf("restart requires a finished match")
		}
		m.reset()
	default:
		return m.flush(), fmt.Errorf("unknown command kind %d", cmd.Kind)
	}

	m.history = append(m.history, cmd)

	// The scripted opponent responds within the same step.
	m.autoplayOpponent()

	return m.flush(), nil
}

// flush returns the buffered events and publishes them on the bus.
func (m *Match) flush() []rules.Event {
	out := make([]rules.Event, len(m.pending))
	copy(out, m.pending)
	m.bus.PublishBatch(out)
	m.pending = m.pending[:0]
	return out
}

func (m *Match) emit(e rules.Event) {
	e.ID = uuid.New().String()
	e.MatchID = m.id
	e.Round = m.turn.Round()
	m.pending = append(m.pending, e)
}

func (m *Match) emitSimple(t rules.EventType, seat rules.Seat, fill func(*rules.Event)) {
	e := rules.NewEvent(t, m.id, seat)
	if fill != nil {
		fill(&e)
	}
	m.emit(e)
}

func (m *Match) emitCardsDrawn(seat rules.Seat, cards []Card) {
	if len(cards) == 0 {
		return
	}
	m.emitSimple(rules.EventCardsDrawn, seat, func(e *rules.Event) {
		e.Cards = cardCodes(cards)
		e.Amount = len(cards)
		e.Description = fmt.Sprintf("%s drew %d cards", seat, len(cards))
	})
}

func cardCodes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.String()
	}
	return codes
}

// handlePlayCard validates and executes a card play for the given seat.
func (m *Match) handlePlayCard(seat rules.Seat, index int) error {
	if m.over {
		return fmt.Errorf("match is over")
	}
	if res := m.turn.CheckCardPlay(seat); !res.Legal {
		return fmt.Errorf("%s", res.Reason)
	}
	phase := m.turn.Phase()

	side := m.sides[seat]
	card, err := side.removeFromHand(index)
	if err != nil {
		return err
	}
	m.played[seat] = &card

	m.emitSimple(rules.EventCardPlayed, seat, func(e *rules.Event) {
		e.Cards = []string{card.String()}
		e.Description = fmt.Sprintf("%s played %s", seat, card)
	})

	if phase == rules.PhaseAwaitingInitiativePlay {
		m.turn.SetPhase(rules.PhaseAwaitingResponsePlay)
		return nil
	}

	m.turn.SetPhase(rules.PhaseComparing)
	m.resolveRound()
	return nil
}

// compare applies the rank order, inverted while the ordering hack holds.
func (m *Match) compare(a, b Card) BattleOutcome {
	outcome := a.Beats(b)
	if m.orderingHacked {
		outcome = outcome.Invert()
	}
	return outcome
}

// resolveRound compares the two played cards, escalating into a war on a
// tie, then transfers cards, applies the winning word and completes the
// round.
func (m *Match) resolveRound() {
	playerCard := *m.played[rules.SeatPlayer]
	oppoCard := *m.played[rules.SeatOpponent]

	outcome := m.compare(playerCard, oppoCard)
	warOccurred := false
	transferred := []Card{playerCard, oppoCard}

	var winner rules.Seat
	var winningCard Card

	if outcome == OutcomeTie {
		warOccurred = true
		won, stake, winCard, ok := m.resolveWar(transferred)
		if !ok {
			return // war ended the match
		}
		winner, transferred, winningCard = won, stake, winCard
	} else {
		if outcome == OutcomeWin {
			winner = rules.SeatPlayer
			winningCard = playerCard
		} else {
			winner = rules.SeatOpponent
			winningCard = oppoCard
		}
	}

	winSide := m.sides[winner]
	winSide.wins.Push(transferred...)
	points := 0
	for _, c := range transferred {
		points += c.Points()
	}

	if winningCard.Word != WordNone {
		m.applyWord(winningCard.Word, winner, points)
	}

	m.emitSimple(rules.EventRoundResolved, winner, func(e *rules.Event) {
		e.Cards = cardCodes(transferred)
		e.Amount = len(transferred)
		e.Flag = warOccurred
		e.Description = fmt.Sprintf("%s won the round (%d cards, war=%t)", winner, len(transferred), warOccurred)
	})

	m.completeRound()
}

// resolveWar runs the stake-and-reveal loop. Both just-played cards enter
// the stake face-down; each escalation adds one face-up card per side.
// ok is false when the war terminated the match.
func (m *Match) resolveWar(stake []Card) (winner rules.Seat, fullStake []Card, winningCard Card, ok bool) {
	m.turn.SetPhase(rules.PhaseWarEscalation)

	first := m.turn.Initiative()
	second := first.Other()

	for {
		m.emitSimple(rules.EventWarEscalated, first, func(e *rules.Event) {
			e.Amount = len(stake)
			e.Description = fmt.Sprintf("war escalation with %d cards at stake", len(stake))
		})

		faceUps := make(map[rules.Seat]Card, 2)
		for _, seat := range []rules.Seat{first, second} {
			card, supplied := m.sides[seat].takeAnyCard()
			if !supplied {
				m.endMatch(EndRanOutOfCardsDuringWar, seat)
				return 0, nil, Card{}, false
			}
			faceUps[seat] = card
			stake = append(stake, card)
		}

		playerUp := faceUps[rules.SeatPlayer]
		oppoUp := faceUps[rules.SeatOpponent]
		switch m.compare(playerUp, oppoUp) {
		case OutcomeWin:
			return rules.SeatPlayer, stake, playerUp, true
		case OutcomeLoss:
			return rules.SeatOpponent, stake, oppoUp, true
		case OutcomeTie:
			// face-ups join the face-down stake; escalate again
		}
	}
}

// applyWord applies the winning word's deltas to the winner and emits
// WordEffectApplied.
func (m *Match) applyWord(word Word, winner rules.Seat, roundPoints int) {
	side := m.sides[winner]
	var summary []string

	for _, delta := range WordDeltas(word) {
		switch delta.Kind {
		case DeltaSeeds:
			side.seeds += delta.Amount
			summary = append(summary, fmt.Sprintf("+%d seed", delta.Amount))
		case DeltaMana:
			side.mana += delta.Amount
			summary = append(summary, fmt.Sprintf("+%d mana", delta.Amount))
		case DeltaUnlockCheat:
			if id, unlocked := m.unlockNextPhysicalCheat(side); unlocked {
				summary = append(summary, fmt.Sprintf("unlocked %s", id))
			}
		case DeltaMagicianDistraction:
			m.distractions.DistractNextRound(ObserverMagician, delta.Amount)
			summary = append(summary, fmt.Sprintf("magician distracted next %d round(s)", delta.Amount))
		case DeltaDoublePoints:
			side.bonusPoints += roundPoints
			summary = append(summary, fmt.Sprintf("round points doubled (+%d)", roundPoints))
		}
	}

	m.emitSimple(rules.EventWordEffectApplied, winner, func(e *rules.Event) {
		e.Word = word.String()
		e.Description = strings.Join(summary, ", ")
	})
}

// unlockNextPhysicalCheat unlocks the first still-locked physical cheat in
// catalog order.
func (m *Match) unlockNextPhysicalCheat(side *participantState) (CheatID, bool) {
	for _, spec := range CheatCatalog() {
		if spec.Class != ClassPhysical {
			continue
		}
		if !side.unlocked[spec.ID] {
			side.unlocked[spec.ID] = true
			return spec.ID, true
		}
	}
	return "", false
}

// completeRound evaluates terminal conditions, ticks distraction timers,
// flips initiative and refills empty hands for the next round.
func (m *Match) completeRound() {
	m.turn.SetPhase(rules.PhaseRoundComplete)
	m.played = make(map[rules.Seat]*Card)
	m.revealOpponent = false

	if m.evaluateOutcome() {
		return
	}

	for _, change := range m.distractions.Tick() {
		m.emitDistractionChanged(change)
	}

	m.turn.CompleteRound()

	for _, seat := range []rules.Seat{rules.SeatPlayer, rules.SeatOpponent} {
		side := m.sides[seat]
		drawn, err := side.refillIfEmpty()
		if err != nil {
			continue // exhaustion is handled by the outcome evaluator
		}
		if len(drawn) > 0 {
			m.emitCardsDrawn(seat, drawn)
			// The ordering hack lasts until the next draw.
			m.orderingHacked = false
		}
	}

	m.evaluateOutcome()
}

func (m *Match) emitDistractionChanged(change DistractionChange) {
	m.emitSimple(rules.EventDistractionChanged, rules.SeatPlayer, func(e *rules.Event) {
		e.SeatSet = false
		e.Observer = change.Observer.String()
		e.Flag = change.State.Active
		e.Amount = change.State.RoundsRemaining
		e.Description = fmt.Sprintf("%s distracted=%t remaining=%d",
			change.Observer, change.State.Active, change.State.RoundsRemaining)
	})
}

// autoplayOpponent lets the scripted opponent act whenever a card play is
// awaited from it.
func (m *Match) autoplayOpponent() {
	for !m.over {
		phase := m.turn.Phase()
		if phase != rules.PhaseAwaitingInitiativePlay && phase != rules.PhaseAwaitingResponsePlay {
			return
		}
		if m.turn.ExpectedActor() != rules.SeatOpponent {
			return
		}
		side := m.sides[rules.SeatOpponent]
		if len(side.hand) == 0 {
			// Nothing to play; the outcome evaluator decides the match.
			m.evaluateOutcome()
			return
		}
		var facing *Card
		if phase == rules.PhaseAwaitingResponsePlay {
			facing = m.played[rules.SeatPlayer]
		}
		index := m.strategy.ChooseCard(side.hand, facing)
		if index < 0 || index >= len(side.hand) {
			index = 0
		}
		if err := m.handlePlayCard(rules.SeatOpponent, index); err != nil {
			m.logger.Error("opponent autoplay failed",
				zap.String("match_id", m.id),
				zap.Error(err),
			)
			return
		}
	}
}

// endMatch records the terminal outcome and emits GameOver. loser is the
// seat the reason applies to when the reason is seat-specific.
func (m *Match) endMatch(reason EndReason, loser rules.Seat) {
	if m.over {
		return
	}
	m.over = true
	m.endReason = reason
	m.turn.SetPhase(rules.PhaseMatchOver)

	m.emitSimple(rules.EventGameOver, loser, func(e *rules.Event) {
		e.Reason = string(reason)
		e.Description = fmt.Sprintf("game over: %s", reason)
	})

	stats := m.stats.Stats()
	m.logger.Info("match ended",
		zap.String("match_id", m.id),
		zap.String("reason", string(reason)),
		zap.Int("round", m.turn.Round()),
		zap.Int("player_score", m.sides[rules.SeatPlayer].score()),
		zap.Int("opponent_score", m.sides[rules.SeatOpponent].score()),
		zap.Int("wars", stats.Wars),
		zap.Int("cheats_attempted", stats.CheatsAttempted),
	)
}
