package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/wizardswar/wizards-war-go/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "history.db")}
	store, err := NewStore(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndListMatches(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := MatchRecord{
		MatchID:       "match-1",
		Reason:        "WIN",
		PlayerScore:   30,
		OpponentScore: 22,
		Rounds:        26,
		FinishedAt:    time.Now().Add(-time.Hour).UTC(),
	}
	newer := MatchRecord{
		MatchID:       "match-2",
		Reason:        "CAUGHT_CHEATING",
		PlayerScore:   4,
		OpponentScore: 6,
		Rounds:        5,
		FinishedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.SaveMatch(ctx, older))
	require.NoError(t, store.SaveMatch(ctx, newer))

	records, err := store.ListMatches(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "match-2", records[0].MatchID)
	assert.Equal(t, "match-1", records[1].MatchID)
	assert.Equal(t, 30, records[1].PlayerScore)
	assert.Equal(t, "CAUGHT_CHEATING", records[0].Reason)
}

func TestSaveMatchUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := MatchRecord{MatchID: "match-1", Reason: "DRAW", FinishedAt: time.Now().UTC()}
	require.NoError(t, store.SaveMatch(ctx, rec))

	rec.Reason = "WIN"
	rec.PlayerScore = 12
	require.NoError(t, store.SaveMatch(ctx, rec))

	records, err := store.ListMatches(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "WIN", records[0].Reason)
	assert.Equal(t, 12, records[0].PlayerScore)
}

func TestListMatchesDefaultsLimit(t *testing.T) {
	store := newTestStore(t)

	records, err := store.ListMatches(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
