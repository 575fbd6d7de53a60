//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func databaseConfig(uri, dbName string) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            uri,
		DatabaseName:                   dbName,
		LogsTTL:                        30 * 24 * time.Hour,
		CheckoutStateTTL:               7 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uri := testutil.SharedMongoURI(t)

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(uri, testutil.DatabaseName(t)))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.CheckoutStateRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NoError(t, components.HealthCheck(context.Background()))
	})

	t.Run("checkout state round trip", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(uri, testutil.DatabaseName(t)))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		require.NoError(t, components.CheckoutStateRepo.SaveSelection(ctx, "s1", []string{"B1", "B2"}))
		doc, err := components.CheckoutStateRepo.Get(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, []string{"B1", "B2"}, doc.SelectedProducts)
	})

	t.Run("logs are written and counted", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(uri, testutil.DatabaseName(t)))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		require.NoError(t, components.LoggingService.CreateLog(ctx, &model.LogEntry{
			Level:      "info",
			ActionType: "add_item",
			SessionID:  "s1",
			Message:    "item added",
		}))
		count, err := components.LoggingService.CountLogs(ctx, model.LogQueryOptions{SessionID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("circuit breakers start closed", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(databaseConfig(uri, testutil.DatabaseName(t)))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		stats := components.CheckoutCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})

	t.Run("unreachable database returns nil", func(t *testing.T) {
		t.Parallel()
		cfg := databaseConfig("mongodb://127.0.0.1:1", "unreachable")

		assert.Nil(t, InitializeDatabase(cfg))
	})
}
