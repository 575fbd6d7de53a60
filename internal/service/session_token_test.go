//go:build !integration

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenService_IssueAndValidate(t *testing.T) {
	svc := NewSessionTokenService("test-secret", time.Hour)

	token, expiresAt, err := svc.Issue("session-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	sessionID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
}

func TestSessionTokenService_Issue_EmptySession(t *testing.T) {
	svc := NewSessionTokenService("test-secret", time.Hour)

	_, _, err := svc.Issue("")

	assert.Error(t, err)
}

func TestSessionTokenService_Validate(t *testing.T) {
	signed := func(method jwt.SigningMethod, key interface{}, claims SessionClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() SessionClaims {
		return SessionClaims{
			SessionID: "session-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    TokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage",
			token: func() string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func() string {
				return signed(jwt.SigningMethodHS256, []byte("other-secret"), valid())
			},
		},
		{
			name: "expired",
			token: func() string {
				c := valid()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return signed(jwt.SigningMethodHS256, []byte("test-secret"), c)
			},
		},
		{
			name: "wrong issuer",
			token: func() string {
				c := valid()
				c.Issuer = "someone-else"
				return signed(jwt.SigningMethodHS256, []byte("test-secret"), c)
			},
		},
		{
			name: "missing session id",
			token: func() string {
				c := valid()
				c.SessionID = ""
				return signed(jwt.SigningMethodHS256, []byte("test-secret"), c)
			},
		},
		{
			name: "unsigned",
			token: func() string {
				return signed(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid())
			},
		},
	}

	svc := NewSessionTokenService("test-secret", time.Hour)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token())
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
