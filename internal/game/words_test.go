package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wizardswar/wizards-war-go/internal/game"
)

func TestWordDeltas(t *testing.T) {
	tests := []struct {
		word game.Word
		want []game.ResourceDelta
	}{
		{game.WordEgeq, []game.ResourceDelta{{Kind: game.DeltaSeeds, Amount: 1}}},
		{game.WordGeh, []game.ResourceDelta{{Kind: game.DeltaMana, Amount: 1}}},
		{game.WordHet, []game.ResourceDelta{{Kind: game.DeltaUnlockCheat, Amount: 1}}},
		{game.WordMeb, []game.ResourceDelta{{Kind: game.DeltaMagicianDistraction, Amount: 1}}},
		{game.WordQube, []game.ResourceDelta{{Kind: game.DeltaDoublePoints, Amount: 1}}},
		{game.WordZihbm, nil},
		{game.WordNone, nil},
	}

	for _, tc := range tests {
		t.Run(tc.word.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, game.WordDeltas(tc.word))
		})
	}
}
