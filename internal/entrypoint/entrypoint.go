package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postboard/postboard/internal/audit"
	"github.com/postboard/postboard/internal/auth"
	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/database"
	"github.com/postboard/postboard/internal/database/accounts"
	auditrepo "github.com/postboard/postboard/internal/database/audit"
	http_controllers "github.com/postboard/postboard/internal/http"
	"github.com/postboard/postboard/internal/scheduler"
	"github.com/postboard/postboard/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires up the application and serves it.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Postboard auth service v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if cfg.Auth.SigningKey == "" {
		key, err := auth.GenerateSigningKey()
		if err != nil {
			log.Fatalf("Failed to generate signing key: %v", err)
		}
		cfg.Auth.SigningKey = key
		log.Printf("WARNING: AUTH_SIGNING_KEY is not set. Generated an ephemeral key; " +
			"all tokens become invalid on restart. Set 'AUTH_SIGNING_KEY' to persist sessions.")
	}

	accountStore := accounts.NewRepository(db.DB)
	authService, err := auth.NewService(accountStore, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	var auditService *audit.Service
	if cfg.Audit.Enabled {
		auditService = audit.NewService(auditrepo.NewRepository(db.DB))
	} else {
		log.Printf("Audit trail disabled")
	}

	// Task queue for background maintenance
	var taskClient *tasks.Client
	var cleanupScheduler *scheduler.AuditCleanupScheduler
	if cfg.Tasks.Enabled && auditService != nil {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		taskClient.Register(tasks.NewCleanupAuthEventsQueue(auditService))

		taskCtx, taskCancel := context.WithCancel(context.Background())
		defer taskCancel()
		go taskClient.Start(taskCtx)

		cleanupScheduler = scheduler.NewAuditCleanupScheduler(taskClient, cfg.Audit)
		if err := cleanupScheduler.Start(taskCtx); err != nil {
			log.Fatalf("Failed to start audit cleanup scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		AuthService: authService,
		Auditor:     auditService,
		Version:     version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
			taskClient.Close()
		}
	})
}
