package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/pkg/auth"
)

// Context keys set by the session middleware.
const (
	ContextRole      = "role"
	ContextStudentID = "studentID"
	ContextAdminID   = "adminID"
)

// SessionMiddleware resolves the session cookie into request-scoped role
// state. Resolution is best-effort: an absent or invalid cookie leaves the
// request anonymous; the per-route guards decide whether that is fatal.
type SessionMiddleware struct {
	sessions *auth.SessionService
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions *auth.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// Resolve reads and validates the session cookie, exposing role and owning id
// on the gin context.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.sessions.CookieName())
		if err != nil || token == "" {
			c.Set(ContextRole, auth.RoleAnonymous)
			c.Next()
			return
		}

		claims, err := m.sessions.Validate(token)
		if err != nil {
			// Expired or tampered cookie degrades to anonymous.
			c.Set(ContextRole, auth.RoleAnonymous)
			c.Next()
			return
		}

		c.Set(ContextRole, claims.Role)
		switch claims.Role {
		case auth.RoleStudent:
			c.Set(ContextStudentID, claims.SubjectID)
		case auth.RoleAdmin:
			c.Set(ContextAdminID, claims.SubjectID)
		}
		c.Next()
	}
}

// RequireRole rejects any request whose session role does not match. The
// response carries a redirect hint to the login page instead of data.
func (m *SessionMiddleware) RequireRole(required auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleFromContext(c)
		if role == auth.RoleAnonymous {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized. Please log in with the correct account.")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		if role != required {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Unauthorized. Please log in with the correct account.")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// RequireAdminSession admits only requests holding an admin session. Kept
// separate from RequireRole for the routes that historically checked just for
// the admin id.
func (m *SessionMiddleware) RequireAdminSession() gin.HandlerFunc {
	return m.RequireRole(auth.RoleAdmin)
}

// RoleFromContext returns the resolved session role, defaulting to anonymous.
func RoleFromContext(c *gin.Context) auth.Role {
	value, exists := c.Get(ContextRole)
	if !exists {
		return auth.RoleAnonymous
	}
	role, ok := value.(auth.Role)
	if !ok {
		return auth.RoleAnonymous
	}
	return role
}

// StudentIDFromContext returns the session-bound student id.
func StudentIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextStudentID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok && id > 0
}

// AdminIDFromContext returns the session-bound admin id.
func AdminIDFromContext(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextAdminID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok && id > 0
}
