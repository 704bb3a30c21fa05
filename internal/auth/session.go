package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager issues and validates kiosk session tokens. A token
// identifies the worker standing at a kiosk; it carries no permissions.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a new session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret string, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Session is the validated content of a kiosk session token.
type Session struct {
	WorkerID   uuid.UUID
	PersonalID string
	ExpiresAt  time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	PersonalID string `json:"pid"`
}

// Issue creates a signed HS256 token with the worker ID as subject.
func (m *SessionManager) Issue(workerID uuid.UUID, personalID string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   workerID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		PersonalID: personalID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses and validates a session token.
func (m *SessionManager) Validate(tokenString string) (Session, error) {
	if tokenString == "" {
		return Session{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return Session{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Session{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return Session{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	workerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Session{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return Session{WorkerID: workerID, PersonalID: claims.PersonalID, ExpiresAt: expiresAt}, nil
}
