//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})

	assert.Nil(t, components)
}

func TestDatabaseComponents_CloseNil(t *testing.T) {
	var components *DatabaseComponents

	assert.NoError(t, components.Close(context.Background()))
	assert.NoError(t, (&DatabaseComponents{}).Close(context.Background()))
}

func TestNewDatabaseBreaker(t *testing.T) {
	cb := newDatabaseBreaker(config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 1,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}, "mongodb-test")

	assert.Equal(t, "mongodb-test", cb.Name())
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())

	_ = cb.Execute(context.Background(), func() error { return assert.AnError })
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
}

func TestMongoOptions(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.DatabaseConfig
		wantMinPool uint64
		wantMaxPool uint64
		wantConnect time.Duration
		compressed  bool
	}{
		{name: "nothing configured"},
		{
			name:        "large pool",
			cfg:         config.DatabaseConfig{MaxPoolSize: 100, ConnectTimeout: 4 * time.Second, Compression: true},
			wantMinPool: 5,
			wantMaxPool: 100,
			wantConnect: 4 * time.Second,
			compressed:  true,
		},
		{
			name:        "pool smaller than the default floor",
			cfg:         config.DatabaseConfig{MaxPoolSize: 2},
			wantMinPool: 2,
			wantMaxPool: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			co := options.Client()
			for _, opt := range mongoOptions(tt.cfg) {
				opt(co)
			}

			if tt.wantMaxPool > 0 {
				assert.Equal(t, tt.wantMinPool, *co.MinPoolSize)
				assert.Equal(t, tt.wantMaxPool, *co.MaxPoolSize)
			} else {
				assert.Nil(t, co.MaxPoolSize)
			}
			if tt.wantConnect > 0 {
				assert.Equal(t, tt.wantConnect, *co.ConnectTimeout)
				assert.Equal(t, tt.wantConnect/2, *co.ServerSelectionTimeout)
			}
			assert.Equal(t, tt.compressed, len(co.Compressors) > 0)
		})
	}
}
