package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "x-access-token"

// Context keys for request-scoped auth data
const (
	ContextKeyAccountID     = "auth_account_id"
	ContextKeyCorrelationID = "auth_correlation_id"
)

// EventRecorder receives authentication events for the audit trail.
// Implementations must never be handed secrets, only outcomes and
// correlation identifiers.
type EventRecorder interface {
	RecordSignup(accountID uint, correlationID, ip string, err error)
	RecordLogin(accountID uint, correlationID, ip string, err error)
	RecordTokenRejected(correlationID, ip string, err error)
}

// Middleware gates protected routes on a verified session token.
type Middleware struct {
	service  *Service
	recorder EventRecorder
}

// NewMiddleware creates the token verification middleware. The recorder
// may be nil to disable audit logging.
func NewMiddleware(service *Service, recorder EventRecorder) *Middleware {
	return &Middleware{
		service:  service,
		recorder: recorder,
	}
}

// Handler verifies the x-access-token header and stores the authenticated
// account ID in the request context, or rejects with 401.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)

		accountID, err := m.service.VerifyToken(token)
		if err != nil {
			if m.recorder != nil {
				m.recorder.RecordTokenRejected(GetCorrelationID(c), c.ClientIP(), err)
			}
			message := "authentication required"
			if errors.Is(err, ErrTokenExpired) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": message,
			})
			return
		}

		c.Set(ContextKeyAccountID, accountID)
		c.Next()
	}
}

// CorrelationMiddleware assigns each request a correlation ID, exposed to
// handlers through the context and to clients through X-Request-ID. Logs
// and audit events reference this ID instead of any credential material.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader("X-Request-ID")
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.Set(ContextKeyCorrelationID, correlationID)
		c.Header("X-Request-ID", correlationID)
		c.Next()
	}
}

// GetAccountID retrieves the authenticated account's ID from the context.
// Returns 0 if the request is not authenticated.
func GetAccountID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyAccountID); exists {
		if accountID, ok := id.(uint); ok {
			return accountID
		}
	}
	return 0
}

// GetCorrelationID retrieves the request's correlation ID, if any.
func GetCorrelationID(c *gin.Context) string {
	if id, exists := c.Get(ContextKeyCorrelationID); exists {
		if correlationID, ok := id.(string); ok {
			return correlationID
		}
	}
	return ""
}
