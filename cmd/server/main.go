package main

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"

	"jobdeck/application"
	"jobdeck/infrastructure/backendapi"
	"jobdeck/infrastructure/config"
	"jobdeck/interfaces/web/handlers"
	"jobdeck/interfaces/web/presenters"
	templates "jobdeck/interfaces/web/templates"
	"jobdeck/logging"
	"jobdeck/platform/events"
)

func main() {
	// Create app-wide context for graceful shutdown
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Initialize configuration
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()

	// Initialize logging
	logger := initializeLogging(cfg)

	// Build dependencies with app context
	deps := buildDependencies(appCtx, cfg)

	// Initial load of all list resources
	go deps.Orchestrator.Start(appCtx)

	// Setup routes and start server
	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger, deps, appCancel)
}

// Dependencies holds all application dependencies organized by layer
type Dependencies struct {
	// Infrastructure
	Logger  *logging.Logger
	Gateway *backendapi.Client

	// Application layer
	State        *application.QueryState
	Orchestrator *application.FetchOrchestrator
	SyncCommand  *application.SyncCommand
	EventBus     *events.SyncEventBus

	// Presentation layer
	DashboardHandlers *handlers.DashboardHandlers
	SyncHandlers      *handlers.SyncHandlers
	SSEManager        *handlers.SSEManager
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"backend_url", cfg.Backend.BaseURL,
	)

	return logger
}

// orchestratorRefresher narrows the orchestrator to the refresh surface the
// event handlers need.
type orchestratorRefresher struct {
	orchestrator *application.FetchOrchestrator
}

func (r orchestratorRefresher) RefreshJobGroups(ctx context.Context) {
	r.orchestrator.RefreshJobGroups(ctx)
}

func (r orchestratorRefresher) RefreshStats(ctx context.Context) {
	r.orchestrator.RefreshStats(ctx)
}

// buildDependencies creates all application dependencies
func buildDependencies(appCtx context.Context, cfg *config.AppConfig) *Dependencies {
	// Infrastructure
	gateway := backendapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Application layer
	state := application.NewQueryState()
	orchestrator := application.NewFetchOrchestrator(gateway, state)
	eventBus := events.NewSyncEventBus()

	// Presentation layer
	sseManager := handlers.NewSSEManager(appCtx)
	groupPresenter := presenters.NewGroupPresenter()
	statsPresenter := presenters.NewStatsPresenter()
	syncPresenter := presenters.NewSyncPresenter()

	// Write-side command service; SSE manager doubles as the notifier
	syncCommand := application.NewSyncCommand(gateway, state, eventBus, sseManager)

	dashboardHandlers := handlers.NewDashboardHandlers(orchestrator, groupPresenter, statsPresenter, syncPresenter)
	syncHandlers := handlers.NewSyncHandlers(syncCommand, syncPresenter)

	// Wire the declared side-effect table: sync success refreshes lists and
	// notifies clients; every outcome produces a toast.
	events.NewNotificationEventHandlers(sseManager, syncPresenter).RegisterHandlers(eventBus)
	events.NewRefreshEventHandlers(orchestratorRefresher{orchestrator}, sseManager).RegisterHandlers(eventBus)

	return &Dependencies{
		Logger:            logging.Default(),
		Gateway:           gateway,
		State:             state,
		Orchestrator:      orchestrator,
		SyncCommand:       syncCommand,
		EventBus:          eventBus,
		DashboardHandlers: dashboardHandlers,
		SyncHandlers:      syncHandlers,
		SSEManager:        sseManager,
	}
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	setupHTTPLogging(r, deps, cfg)
	r.Use(middleware.Recoverer)

	// Static assets
	mountStaticAssets(r)

	// System endpoints
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	r.Get("/events", deps.SSEManager.HandleSSEConnection)

	// Main page
	r.Get("/", deps.DashboardHandlers.Home)
	r.Post("/refresh", deps.DashboardHandlers.Refresh)

	// HTMX partials for the read side
	r.Get("/partials/dashboard", deps.DashboardHandlers.DashboardPartial)
	r.Get("/partials/groups", deps.DashboardHandlers.GroupsPartial)
	r.Get("/partials/groups/filter", deps.DashboardHandlers.FilterGroups)
	r.Get("/partials/groups/sort", deps.DashboardHandlers.SortGroups)
	r.Get("/partials/groups/order/toggle", deps.DashboardHandlers.ToggleSortOrder)
	r.Get("/partials/groups/search", deps.DashboardHandlers.SearchGroups)
	r.Get("/groups/{groupID}/modal", deps.DashboardHandlers.GroupModal)

	// Write operations
	r.Post("/sync", deps.SyncHandlers.SubmitSync)
	r.Post("/reindex", deps.SyncHandlers.SubmitReindex)

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// Note: logFile is not closed here as it needs to stay open for the server lifetime

	httpLogger := httplog.NewLogger("jobdeck", httplog.Options{
		Writer: logFile,
		JSON:   true,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func mountStaticAssets(r chi.Router) {
	sub, _ := fs.Sub(templates.FS, "assets")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger, deps *Dependencies, appCancel context.CancelFunc) {
	server := &http.Server{Addr: addr, Handler: router}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		// Cancel app-wide context first to signal all services to shutdown
		appCancel()

		// Close SSE connections immediately
		deps.SSEManager.CloseAll()

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}
