package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the iss claim of session tokens.
const TokenIssuer = "cart-sync"

// ErrInvalidToken is returned when a session token is malformed, forged or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// SessionClaims identifies the cart session a token was issued for.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and validates session tokens.
type SessionTokenService interface {
	// Issue signs a token for the session and returns it with its expiry.
	Issue(sessionID string) (string, time.Time, error)
	// Validate parses a token and returns the session id it carries.
	Validate(tokenString string) (string, error)
}

// SessionTokenServiceImpl signs HS256 tokens with a shared secret.
type SessionTokenServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
}

// NewSessionTokenService creates a token service.
func NewSessionTokenService(secretKey string, ttl time.Duration) SessionTokenService {
	return &SessionTokenServiceImpl{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Issue signs a token for the session.
func (s *SessionTokenServiceImpl) Issue(sessionID string) (string, time.Time, error) {
	if sessionID == "" {
		return "", time.Time{}, errors.New("session ID is empty, cannot create token")
	}

	issuedAt := time.Now()
	expiresAt := issuedAt.Add(s.ttl)
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate parses a token and returns its session id.
func (s *SessionTokenServiceImpl) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(TokenIssuer))
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
