//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/client"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/mocks"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/guttosm/cart-sync/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.Config)
		repo      repository.CheckoutStateRepositoryInterface
		wantError bool
	}{
		{name: "in-memory checkout state when no repository is given"},
		{name: "uses the given repository", repo: repository.NewMemoryCheckoutStateRepository()},
		{
			name:      "rejects a base url without scheme",
			mutate:    func(cfg *config.Config) { cfg.Upstream.BaseURL = "localhost:3000" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			components, err := InitializeServices(cfg, tt.repo, nil)

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer components.Sessions.Stop()
			assert.NotNil(t, components.Sessions)
			assert.NotNil(t, components.Tokens)
			assert.Equal(t, "upstream-cart", components.UpstreamBreaker.Name())
		})
	}
}

func TestUpstreamPaths(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.UpstreamConfig
		want client.Paths
	}{
		{name: "empty config keeps the storefront defaults", want: client.DefaultPaths()},
		{
			name: "overrides only the configured paths",
			cfg:  config.UpstreamConfig{AddPath: "/cart/add", PayPath: "/checkout"},
			want: client.Paths{
				Add:    "/cart/add",
				Update: "/api/update-cart",
				Delete: "/api/delete-cart",
				Pay:    "/checkout",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upstreamPaths(tt.cfg))
		})
	}
}

func TestInitializeServices_SessionsTalkToUpstream(t *testing.T) {
	upstream := testutil.NewFakeCartServer()
	defer upstream.Close()

	cfg := testConfig()
	cfg.Upstream.BaseURL = upstream.URL
	audit := &mocks.AuditRecorderStub{}

	components, err := InitializeServices(cfg, nil, audit)
	require.NoError(t, err)
	defer components.Sessions.Stop()

	s, err := components.Sessions.Create()
	require.NoError(t, err)

	outcome, err := s.AddItem(context.Background(), "B1", "Tắt Đèn", decimal.NewFromInt(50000))
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeApplied, outcome.Status)
	assert.Equal(t, 1, upstream.Quantity("B1"))
	assert.NotEmpty(t, audit.Entries())

	token, expires, err := components.Tokens.Issue(s.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, time.Minute)
	id, err := components.Tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, id)
}
