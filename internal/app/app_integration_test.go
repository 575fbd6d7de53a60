//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	uri := testutil.SharedMongoURI(t)

	tests := []struct {
		name       string
		mutate     func(*config.Config, string)
		wantDB     bool
		wantChecks []string
	}{
		{
			name: "initialize app with MongoDB enabled",
			mutate: func(cfg *config.Config, dbName string) {
				cfg.Database = databaseConfig(uri, dbName)
			},
			wantDB:     true,
			wantChecks: []string{`"mongodb":"ok"`, `"mongodb_checkout_states_circuit":"closed"`, `"mongodb_logs_circuit":"closed"`},
		},
		{
			name:       "initialize app with MongoDB disabled",
			mutate:     func(cfg *config.Config, _ string) { cfg.Database.Enabled = false },
			wantChecks: []string{`"upstream_cart_circuit":"closed"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testIntegrationConfig()
			tt.mutate(&cfg, testutil.DatabaseName(t))

			a, err := InitializeApp(cfg)
			require.NoError(t, err)
			defer a.Close(context.Background())

			assert.Equal(t, tt.wantDB, a.Database != nil)
			assert.Equal(t, tt.wantDB, a.Audit != nil)

			w := httptest.NewRecorder()
			a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			for _, check := range tt.wantChecks {
				assert.Contains(t, w.Body.String(), check)
			}
		})
	}
}

func testIntegrationConfig() config.Config {
	cfg := config.Load()
	cfg.Log.Level = "error"
	return cfg
}
