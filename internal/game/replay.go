package game

import (
	"fmt"

	"github.com/wizardswar/wizards-war-go/internal/game/rules"
	"go.uber.org/zap"
)

// The engine is deterministic given the decks, the rules and the opponent
// strategy, so a match can be reconstructed by re-applying its command log
// against the same options. Useful for bug reports and for verifying that
// a refactor leaves resolution unchanged.

// History returns a copy of the successfully applied commands, in order.
func (m *Match) History() []Command {
	out := make([]Command, len(m.history))
	copy(out, m.history)
	return out
}

// ReplayMatch rebuilds a match by applying a recorded command log to a
// fresh match with the same options. It fails if any command no longer
// applies cleanly.
func ReplayMatch(id string, opts MatchOptions, commands []Command, logger *zap.Logger) (*Match, error) {
	m, err := NewMatch(id, opts, logger)
	if err != nil {
		return nil, err
	}
	m.flush()

	for i, cmd := range commands {
		if _, err := m.Apply(cmd); err != nil {
			return nil, fmt.Errorf("replaying command %d (%s): %w", i, cmd.Kind, err)
		}
	}
	return m, nil
}

// Stats returns the activity tallies accumulated for this match.
func (m *Match) Stats() rules.MatchStats {
	return m.stats.Stats()
}
