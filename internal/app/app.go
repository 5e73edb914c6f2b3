// Package app wires configuration, logging, storage, transport and the bot
// into one runnable unit.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/odrawq/bolochagina-tgbot/internal/bot"
	"github.com/odrawq/bolochagina-tgbot/internal/config"
	"github.com/odrawq/bolochagina-tgbot/internal/storage"
	storagefile "github.com/odrawq/bolochagina-tgbot/internal/storage/file"
	"github.com/odrawq/bolochagina-tgbot/internal/telegram"
)

// Version is the released bot version, logged at startup.
const Version = "1.2.0"

// App represents the application.
type App struct {
	config *config.Config
	logger *zap.Logger
	store  storage.Storage
	bot    *bot.Bot
	server *http.Server
}

// New creates and initializes a new application instance.
func New() (*App, error) {
	// Load .env if present; real deployments use systemd environment files.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	a := &App{config: cfg, logger: logger}

	logger.Info("bolochagina-tgbot starting",
		zap.String("version", Version),
		zap.Int("pid", os.Getpid()),
		zap.String("mode", a.mode()))

	// Maintenance mode bypasses all routing, so the store is not even
	// opened there.
	if !cfg.MaintenanceMode {
		store, err := storagefile.Open(cfg.UsersFile)
		if err != nil {
			return nil, fmt.Errorf("open user store: %w", err)
		}
		a.store = store
	}

	client, err := telegram.New(cfg.Token, cfg.PollTimeoutSeconds, logger)
	if err != nil {
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	a.bot = bot.New(client, a.store, cfg.AdminChatID, cfg.MaintenanceMode, cfg.MaxConcurrentUpdates, logger)

	a.initHealthServer()

	return a, nil
}

func (a *App) mode() string {
	if a.config.MaintenanceMode {
		return "maintenance"
	}
	return "default"
}

// initHealthServer exposes a liveness endpoint; empty HEALTH_ADDR disables it.
func (a *App) initHealthServer() {
	if a.config.HealthAddr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "bolochagina-tgbot %s is running (mode: %s)", Version, a.mode())
	})

	a.server = &http.Server{
		Addr:         a.config.HealthAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Warn("health server stopped", zap.Error(err))
		}
	}()
}

// Run starts the dispatch loop and blocks until a termination signal. There
// is no draining of in-flight units of work: a shutdown notice is logged and
// the process exits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := a.bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Fatal("dispatch loop failed", zap.Error(err))
		}
	}()

	<-sigChan

	a.logger.Info("bolochagina-tgbot terminated",
		zap.String("version", Version),
		zap.Int("pid", os.Getpid()),
		zap.String("mode", a.mode()))

	return a.Shutdown()
}

// Shutdown stops the health server and flushes buffered log output.
func (a *App) Shutdown() error {
	if a.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("health server shutdown", zap.Error(err))
		}
	}

	_ = a.logger.Sync()
	return nil
}
