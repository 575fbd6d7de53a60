//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))

	repo := NewLogsRepository(db)

	t.Run("create log entry", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "Request completed",
			RequestID:  "test-request-id",
			SessionID:  "sess-1",
			Method:     "POST",
			Path:       "/api/cart/items",
			StatusCode: 200,
			Duration:   12,
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many audit entries", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "info", Message: "Cart action", SessionID: "sess-1", ActionType: "add_item", Outcome: "applied"},
			{Level: "warn", Message: "Cart action", SessionID: "sess-1", ActionType: "adjust_quantity", Outcome: "rejected"},
			{Level: "info", Message: "Cart action", SessionID: "sess-2", ActionType: "checkout", Outcome: "applied"},
		}
		require.NoError(t, repo.CreateMany(ctx, entries))
	})

	t.Run("query by session", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{SessionID: "sess-1"})
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("query by action type", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ActionType: "adjust_quantity"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "rejected", entries[0].Outcome)
	})

	t.Run("query by outcome", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{Outcome: "applied"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		actions := []string{entries[0].ActionType, entries[1].ActionType}
		assert.ElementsMatch(t, []string{"add_item", "checkout"}, actions)
	})

	t.Run("count with filter", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{Level: "info"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, wrappedRepo.Create(ctx, &LogEntryDocument{Level: "info", Message: "Test entry"}))

	count, err := wrappedRepo.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.True(t, cb.GetStats().IsHealthy)
}
