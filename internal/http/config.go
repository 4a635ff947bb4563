package http

import (
	"github.com/postboard/postboard/internal/audit"
	"github.com/postboard/postboard/internal/auth"
	"github.com/postboard/postboard/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to
// create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database    *database.Database
	AuthService *auth.Service

	// Audit trail (optional; nil disables auth event recording)
	Auditor *audit.Service

	// Application info
	Version string
}
