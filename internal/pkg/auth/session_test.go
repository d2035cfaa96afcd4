package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(ttl time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey:  "test-secret",
		TTL:        ttl,
		Issuer:     "hostelpay.test",
		CookieName: "hostelpay_session",
	})
}

func TestSessionService_IssueAndValidate(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.Issue(RoleStudent, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, claims.Role)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, "hostelpay.test", claims.Issuer)
}

func TestSessionService_SingleRolePerSession(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	studentToken, err := svc.Issue(RoleStudent, 7)
	require.NoError(t, err)
	adminToken, err := svc.Issue(RoleAdmin, 1)
	require.NoError(t, err)

	studentClaims, err := svc.Validate(studentToken)
	require.NoError(t, err)
	adminClaims, err := svc.Validate(adminToken)
	require.NoError(t, err)

	// Each token carries exactly one role; there is no combined session.
	assert.Equal(t, RoleStudent, studentClaims.Role)
	assert.Equal(t, RoleAdmin, adminClaims.Role)
	assert.NotEqual(t, studentClaims.ID, adminClaims.ID)
}

func TestSessionService_Validate_Expired(t *testing.T) {
	svc := newTestSessionService(-time.Minute)

	token, err := svc.Issue(RoleStudent, 42)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionService_Validate_Invalid(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, ErrSessionInvalid)
		})
	}
}

func TestSessionService_Validate_WrongKey(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	other := NewSessionService(SessionConfig{
		SecretKey:  "different-secret",
		TTL:        time.Hour,
		Issuer:     "hostelpay.test",
		CookieName: "hostelpay_session",
	})

	token, err := other.Issue(RoleAdmin, 1)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestSessionService_TTLSeconds(t *testing.T) {
	svc := newTestSessionService(12 * time.Hour)
	assert.Equal(t, 43200, svc.TTLSeconds())
	assert.Equal(t, "hostelpay_session", svc.CookieName())
}
