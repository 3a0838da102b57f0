// Package entrypoint wires the application together and runs the HTTP
// server with graceful shutdown.
package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/analytics"
	"github.com/ghassen-kharrat/portfolio/internal/config"
	"github.com/ghassen-kharrat/portfolio/internal/database"
	"github.com/ghassen-kharrat/portfolio/internal/database/messages"
	"github.com/ghassen-kharrat/portfolio/internal/database/pageviews"
	"github.com/ghassen-kharrat/portfolio/internal/database/preferences"
	"github.com/ghassen-kharrat/portfolio/internal/database/settings"
	http_controllers "github.com/ghassen-kharrat/portfolio/internal/http"
	"github.com/ghassen-kharrat/portfolio/internal/mailer"
	"github.com/ghassen-kharrat/portfolio/internal/scheduler"
	"github.com/ghassen-kharrat/portfolio/internal/shell"
	"github.com/ghassen-kharrat/portfolio/internal/tasks"
	"github.com/ghassen-kharrat/portfolio/internal/visitor"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Portfolio v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Repositories on the shared gorm connection
	preferenceRepo := preferences.NewRepository(db.DB)
	messageRepo := messages.NewRepository(db.DB)
	pageViewRepo := pageviews.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)

	// Visitor shells: per-visitor preference stores, toast stacks and
	// section trackers
	shells := shell.NewManager(preferenceRepo)
	defer shells.Close()

	// Anonymous session manager on the raw SQL connection
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := visitor.NewSessionManager(sqlDB, cfg.Sessions)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Generate or use configured CSRF secret
	var csrfSecret []byte
	if cfg.Sessions.CSRFSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Sessions.CSRFSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Sessions.CSRFSecret)
		}
	} else {
		secret, err := visitor.GenerateCSRFSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated CSRF secret (set CSRF_SECRET to persist)")
	}

	// Contact form relay
	mailClient := mailer.NewClient(cfg.Mailer)
	if !mailClient.Configured() {
		log.Printf("WARNING: Mailer credentials are not set. Contact form deliveries will fail. " +
			"Set MAILER_SERVICE_ID, MAILER_TEMPLATE_ID and MAILER_PUBLIC_KEY to enable.")
	}

	// Plausible analytics (database settings override environment)
	plausibleStore := analytics.NewPlausibleStore(settingsRepo, cfg.Plausible)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.DefaultConfig()
		taskCfg.Workers = cfg.Tasks.Workers
		taskCfg.ReleaseAfter = cfg.Tasks.ReleaseAfter
		taskCfg.CleanupInterval = cfg.Tasks.CleanupInterval

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewRecordPageViewQueue(pageViewRepo),
			tasks.NewPrunePageViewsQueue(pageViewRepo),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Maintenance scheduler: page view pruning and idle shell sweeps
	maintenance := scheduler.NewMaintenanceScheduler(taskClient, shells, cfg.Cleanup, cfg.Shell)
	if err := maintenance.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start maintenance scheduler: %v", err)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Shells:         shells,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Sessions.SecureCookies,
		Mailer:         mailClient,
		MessageStore:   messageRepo,
		PlausibleStore: plausibleStore,
		TaskClient:     taskClient,
		TemplatesPath:  cfg.UI.TemplatesPath,
		StaticPath:     cfg.UI.StaticPath,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		maintenance.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
