package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "marketplace-storefront"

var (
	ErrEmptySecret  = errors.New("session token secret cannot be empty")
	ErrInvalidToken = errors.New("invalid session token")
)

// SessionClaims represents the claims carried by a shopper's session token
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies session tokens
type SessionTokenService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewSessionTokenService(secretKey string, ttl time.Duration) (*SessionTokenService, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &SessionTokenService{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}, nil
}

// Issue creates a token for sessionID that expires after the configured TTL
func (s *SessionTokenService) Issue(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("sessionID cannot be empty")
	}

	now := s.now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the session id it carries
func (s *SessionTokenService) Verify(tokenString string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
