//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := NewMongoDB(testutil.SharedMongoURI(t), testutil.DatabaseName(t))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are bound", func(t *testing.T) {
		assert.Equal(t, CheckoutStatesCollection, db.CheckoutStates.Name())
		assert.Equal(t, LogsCollection, db.Logs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("set TTLs repeatedly", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
		assert.NoError(t, db.SetLogsTTL(ctx, 7*24*time.Hour))
		assert.NoError(t, db.SetCheckoutStateTTL(ctx, 24*time.Hour))
	})

	t.Run("non-positive TTL is rejected", func(t *testing.T) {
		assert.Error(t, db.SetCheckoutStateTTL(ctx, 0))
	})
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	start := time.Now()
	_, err := NewMongoDB("mongodb://127.0.0.1:1", "unreachable",
		WithTimeouts(500*time.Millisecond, 500*time.Millisecond),
		WithPoolSize(0, 2),
	)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
