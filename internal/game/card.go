package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is a card's Maya-numeral rank, 0 through 12.
type Rank int

const (
	// MinRank is the lowest rank. It beats MaxRank and loses to all others.
	MinRank Rank = 0
	// MaxRank is the highest rank. It beats everything except MinRank.
	MaxRank Rank = 12
	// NumRanks is the number of distinct ranks.
	NumRanks = 13
)

// Color is a card's color class. Color has no effect on round resolution;
// it exists for deck composition and presentation.
type Color int

const (
	ColorJade Color = iota
	ColorObsidian
	ColorAmber
	ColorQuetzal
	// NumColors is the number of distinct color classes.
	NumColors
)

var colorNames = map[Color]string{
	ColorJade:     "JADE",
	ColorObsidian: "OBSIDIAN",
	ColorAmber:    "AMBER",
	ColorQuetzal:  "QUETZAL",
}

var colorLetters = map[Color]string{
	ColorJade:     "j",
	ColorObsidian: "o",
	ColorAmber:    "a",
	ColorQuetzal:  "q",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("COLOR_%d", int(c))
}

// Word is an optional Word of Power attached to a card. A word triggers its
// bonus effect when the card wins a round.
type Word int

const (
	WordNone Word = iota
	WordEgeq
	WordGeh
	WordHet
	WordMeb
	WordQube
	WordZihbm
)

var wordNames = map[Word]string{
	WordNone:  "",
	WordEgeq:  "EGEQ",
	WordGeh:   "GEH",
	WordHet:   "HET",
	WordMeb:   "MEB",
	WordQube:  "QUBE",
	WordZihbm: "ZIHBM",
}

func (w Word) String() string {
	if name, ok := wordNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WORD_%d", int(w))
}

// BattleOutcome is the result of comparing two cards from the perspective
// of the first card.
type BattleOutcome int

const (
	OutcomeLoss BattleOutcome = iota
	OutcomeTie
	OutcomeWin
)

func (o BattleOutcome) String() string {
	switch o {
	case OutcomeLoss:
		return "LOSS"
	case OutcomeTie:
		return "TIE"
	case OutcomeWin:
		return "WIN"
	}
	return fmt.Sprintf("OUTCOME_%d", int(o))
}

// Invert swaps win and loss, leaving ties untouched.
func (o BattleOutcome) Invert() BattleOutcome {
	switch o {
	case OutcomeLoss:
		return OutcomeWin
	case OutcomeWin:
		return OutcomeLoss
	}
	return o
}

// Beats compares two ranks. The wraparound rule is checked before the
// generic numeric comparison so it cannot be shadowed by "higher wins":
// rank 0 beats rank 12 and loses to every rank 1 through 11.
func (r Rank) Beats(other Rank) BattleOutcome {
	switch {
	case r == other:
		return OutcomeTie
	case r == MinRank && other == MaxRank:
		return OutcomeWin
	case r == MaxRank && other == MinRank:
		return OutcomeLoss
	case r > other:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

// Card is an immutable card value: a rank, a color class and an optional
// Word of Power.
type Card struct {
	Rank  Rank
	Color Color
	Word  Word
}

// Beats compares two cards by rank.
func (c Card) Beats(other Card) BattleOutcome {
	return c.Rank.Beats(other.Rank)
}

// Points returns the score a card is worth once it reaches a win pile.
// Every card is worth one point; word effects adjust points separately.
func (c Card) Points() int {
	return 1
}

// String renders the card in deck-file notation: the decimal rank, the
// color letter, and an optional ":word" suffix. Examples: "12j", "0q:meb".
func (c Card) String() string {
	code := strconv.Itoa(int(c.Rank)) + colorLetters[c.Color]
	if c.Word != WordNone {
		code += ":" + strings.ToLower(c.Word.String())
	}
	return code
}

// ParseCard parses a single card code in deck-file notation.
func ParseCard(code string) (Card, error) {
	body, wordPart, hasWord := strings.Cut(code, ":")
	if len(body) < 2 {
		return Card{}, fmt.Errorf("card code %q too short", code)
	}

	letter := body[len(body)-1:]
	var color Color
	found := false
	for c, l := range colorLetters {
		if l == letter {
			color = c
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("card code %q has unknown color letter %q", code, letter)
	}

	rank, err := strconv.Atoi(body[:len(body)-1])
	if err != nil {
		return Card{}, fmt.Errorf("card code %q has invalid rank: %w", code, err)
	}
	if rank < int(MinRank) || rank > int(MaxRank) {
		return Card{}, fmt.Errorf("card code %q rank out of range 0..12", code)
	}

	word := WordNone
	if hasWord {
		match := false
		for w, name := range wordNames {
			if w != WordNone && strings.EqualFold(name, wordPart) {
				word = w
				match = true
				break
			}
		}
		if !match {
			return Card{}, fmt.Errorf("card code %q has unknown word %q", code, wordPart)
		}
	}

	return Card{Rank: Rank(rank), Color: color, Word: word}, nil
}

// ParseDeck parses a whitespace-separated list of card codes, in order
// from top of pile to bottom.
func ParseDeck(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
