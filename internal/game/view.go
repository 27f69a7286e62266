package game

import (
	"sort"

	"github.com/wizardswar/wizards-war-go/internal/game/rules"
)

// faceDown is the placeholder code for a hidden card.
const faceDown = "??"

// CardView is one card as shown to the player.
type CardView struct {
	Code string `json:"code"`
	Word string `json:"word,omitempty"`
}

// ParticipantView projects one side of the table. Hand entries are
// face-down placeholders when the side's hand is hidden from the player.
type ParticipantView struct {
	Seat     string     `json:"seat"`
	Hand     []CardView `json:"hand"`
	PileSize int        `json:"pileSize"`
	Score    int        `json:"score"`
	Seeds    int        `json:"seeds"`
	Mana     int        `json:"mana"`
	Sleeved  bool       `json:"sleeved"`
	Unlocked []string   `json:"unlockedCheats"`
}

// ObserverView projects one observer's attentiveness.
type ObserverView struct {
	Distracted      bool `json:"distracted"`
	RoundsRemaining int  `json:"roundsRemaining"`
}

// MatchView is the player-facing projection of the whole match. It never
// exposes the opponent's hand or either draw pile beyond their sizes,
// except while a reveal cheat is in effect.
type MatchView struct {
	MatchID    string `json:"matchId"`
	Round      int    `json:"round"`
	Phase      string `json:"phase"`
	Initiative string `json:"initiative"`

	Player   ParticipantView `json:"player"`
	Opponent ParticipantView `json:"opponent"`

	PlayedByPlayer   string `json:"playedByPlayer,omitempty"`
	PlayedByOpponent string `json:"playedByOpponent,omitempty"`

	Bird     ObserverView `json:"bird"`
	Magician ObserverView `json:"magician"`

	ItemsAvailable []string `json:"itemsAvailable"`
	OrderingHacked bool     `json:"orderingHacked"`

	Over      bool   `json:"over"`
	EndReason string `json:"endReason,omitempty"`
}

// View builds the player-facing projection of the current state.
func (m *Match) View() MatchView {
	view := MatchView{
		MatchID:        m.id,
		Round:          m.turn.Round(),
		Phase:          m.turn.Phase().String(),
		Initiative:     m.turn.Initiative().String(),
		Player:         m.participantView(rules.SeatPlayer, true),
		Opponent:       m.participantView(rules.SeatOpponent, m.revealOpponent),
		Bird:           m.observerView(ObserverBird),
		Magician:       m.observerView(ObserverMagician),
		OrderingHacked: m.orderingHacked,
		Over:           m.over,
		EndReason:      string(m.endReason),
	}

	if c := m.played[rules.SeatPlayer]; c != nil {
		view.PlayedByPlayer = c.String()
	}
	if c := m.played[rules.SeatOpponent]; c != nil {
		view.PlayedByOpponent = c.String()
	}

	for item, available := range m.items {
		if available {
			view.ItemsAvailable = append(view.ItemsAvailable, item)
		}
	}
	sort.Strings(view.ItemsAvailable)

	return view
}

func (m *Match) participantView(seat rules.Seat, faceUp bool) ParticipantView {
	side := m.sides[seat]

	hand := make([]CardView, len(side.hand))
	for i, c := range side.hand {
		if faceUp {
			hand[i] = CardView{Code: c.String(), Word: c.Word.String()}
		} else {
			hand[i] = CardView{Code: faceDown}
		}
	}

	unlocked := make([]string, 0, len(side.unlocked))
	for _, spec := range cheatCatalog {
		if side.unlocked[spec.ID] {
			unlocked = append(unlocked, string(spec.ID))
		}
	}

	return ParticipantView{
		Seat:     seat.String(),
		Hand:     hand,
		PileSize: side.draw.Len(),
		Score:    side.score(),
		Seeds:    side.seeds,
		Mana:     side.mana,
		Sleeved:  side.sleeved != nil,
		Unlocked: unlocked,
	}
}

func (m *Match) observerView(observer Observer) ObserverView {
	state := m.distractions.State(observer)
	return ObserverView{
		Distracted:      state.Active,
		RoundsRemaining: state.RoundsRemaining,
	}
}
