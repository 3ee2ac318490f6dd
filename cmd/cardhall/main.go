// Package main is the entry point for Card Hall.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/samdwyer/cardhall/internal/config"
	"github.com/samdwyer/cardhall/internal/game"
	"github.com/samdwyer/cardhall/internal/gamedata"
	"github.com/samdwyer/cardhall/internal/httpapi"
	"github.com/samdwyer/cardhall/internal/ledger"
	"github.com/samdwyer/cardhall/internal/telemetry"
	"github.com/samdwyer/cardhall/internal/ui"
)

var version = "dev"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			ServiceVersion:   version,
			HoneycombAPIKey:  cfg.Telemetry.HoneycombAPIKey,
			HoneycombDataset: cfg.Telemetry.HoneycombDataset,
		})
		if err != nil {
			// Continue without telemetry - the game still works
			logger.Warn("telemetry setup failed", "error", err)
		} else {
			defer func() {
				// ctx is likely cancelled by now
				if err := shutdown(context.Background()); err != nil {
					logger.Error("telemetry shutdown", "error", err)
				}
			}()
		}
	}

	store, closeStore := openLedgerOrMemory(ctx, cfg.Ledger, logger)
	defer closeStore()

	def, err := loadWorld(cfg.WorldFile)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	g, err := game.Start(ctx, def, game.Options{
		Ledger:     store,
		Logger:     logger,
		PlayerName: cfg.PlayerName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	switch cfg.Mode {
	case config.ModeHTTP:
		err = serveHTTP(ctx, cfg, g, logger)
	default:
		err = runTerminal(ctx, cfg, g)
	}
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// newLogger writes JSON to stderr for the HTTP server. The terminal front end
// owns the screen, so it logs to a file or nowhere.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.Mode == config.ModeHTTP {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), func() {}, nil
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, opts)), func() { _ = f.Close() }, nil
}

// openLedgerOrMemory opens the configured ledger. If it can't be opened the
// session still runs, keeping defeats in memory only.
func openLedgerOrMemory(ctx context.Context, lc config.LedgerConfig, logger *slog.Logger) (ledger.Store, func()) {
	store, closeStore, err := openLedger(ctx, lc)
	if err != nil {
		logger.Warn("defeat ledger unavailable, progress will not persist", "backend", lc.Backend, "error", err)
		return ledger.NewMemoryStore(nil), func() {}
	}
	return store, closeStore
}

func openLedger(ctx context.Context, lc config.LedgerConfig) (ledger.Store, func(), error) {
	switch lc.Backend {
	case config.LedgerMemory:
		return ledger.NewMemoryStore(nil), func() {}, nil
	case config.LedgerSQLite:
		s, err := ledger.OpenSQLite(ctx, lc.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.LedgerFile:
		s, err := ledger.NewFileStore(lc.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", lc.Backend)
	}
}

func loadWorld(path string) (gamedata.WorldDef, error) {
	if path == "" {
		return gamedata.LoadWorld()
	}
	return gamedata.LoadWorldFile(path)
}

func runTerminal(ctx context.Context, cfg config.Config, g *game.Game) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return ui.NewApp(screen, g, cfg.EnemyDelay).Run(ctx)
}

func serveHTTP(ctx context.Context, cfg config.Config, g *game.Game, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpapi.RequestIDMiddleware())
	e.Use(httpapi.LoggingMiddleware(logger))

	httpapi.NewHandler(g, logger).Register(e)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
