package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postboard/postboard/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Correlation IDs first so every later log line and audit event can
	// reference one
	router.Use(auth.CorrelationMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "request successfully sent!")
	})

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)

	// recorder must stay nil when no auditor is configured; a typed nil
	// inside the interface would dodge the nil checks downstream
	var recorder auth.EventRecorder
	if cfg.Auditor != nil {
		recorder = cfg.Auditor
	}

	authController := auth.NewController(cfg.AuthService, recorder)
	authMiddleware := auth.NewMiddleware(cfg.AuthService, recorder)
	authController.RegisterRoutes(router, authMiddleware)

	// Accounts can inspect their own auth history when the trail is enabled
	if cfg.Auditor != nil {
		auditController := NewAuditController(cfg.Auditor)
		router.GET("/auth/events", authMiddleware.Handler(), auditController.GetAuthEvents)
	}

	return router
}
