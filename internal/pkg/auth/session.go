package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session errors
var (
	ErrSessionInvalid = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session expired")
)

// Role identifies the authenticated principal kind held by a session.
type Role string

const (
	RoleAnonymous Role = ""
	RoleStudent   Role = "student"
	RoleAdmin     Role = "admin"
)

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey  string
	TTL        time.Duration
	Issuer     string
	CookieName string
}

// SessionService mints and validates signed session tokens. A session holds at
// most one role plus the owning entity's id; issuing a new token replaces any
// prior session outright.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new SessionService
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{config: config}
}

// SessionClaims defines the session token content
type SessionClaims struct {
	Role      Role  `json:"role"`
	SubjectID int64 `json:"subjectId"`
	jwt.RegisteredClaims
}

// CookieName returns the name of the session cookie.
func (s *SessionService) CookieName() string {
	return s.config.CookieName
}

// TTLSeconds returns the session lifetime in whole seconds, for cookie max-age.
func (s *SessionService) TTLSeconds() int {
	return int(s.config.TTL.Seconds())
}

// Issue creates a fresh session token for the given role and entity id.
func (s *SessionService) Issue(role Role, subjectID int64) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Role:      role,
		SubjectID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", subjectID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses a session token and returns its claims.
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrSessionInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, ErrSessionInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrSessionInvalid
	}
	if claims.Role != RoleStudent && claims.Role != RoleAdmin {
		return nil, ErrSessionInvalid
	}
	if claims.SubjectID <= 0 {
		return nil, ErrSessionInvalid
	}

	return claims, nil
}
