package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/agendaboard/internal/agenda"
	"github.com/JonMunkholm/agendaboard/internal/config"
	"github.com/JonMunkholm/agendaboard/internal/logging"
	"github.com/JonMunkholm/agendaboard/internal/slot"
	"github.com/JonMunkholm/agendaboard/internal/spreadsheet"
	"github.com/JonMunkholm/agendaboard/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"storage_backend", cfg.Storage.Backend,
		"import_enabled", cfg.Import.Enabled,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	ctx := context.Background()

	// Open the persistent slot for the row collection
	rowSlot, cleanup, err := openSlot(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage slot", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Load the table once at startup; corrupt or missing data starts empty
	store := agenda.NewStore(ctx, rowSlot)
	slog.Info("agenda table loaded", "rows", store.Len())

	// The spreadsheet parser is an injected capability. Without it the
	// import endpoint stays gated as parser-unavailable.
	var parser agenda.Parser
	if cfg.Import.Enabled {
		parser = spreadsheet.NewExcelParser()
	}

	service := agenda.NewService(store, parser)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// openSlot builds the configured slot backend. The returned cleanup
// closes any resources the backend holds open.
func openSlot(ctx context.Context, cfg *config.Config) (agenda.Slot, func(), error) {
	switch strings.ToLower(cfg.Storage.Backend) {
	case "postgres":
		poolConfig, err := pgxpool.ParseConfig(cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		poolConfig.MaxConns = int32(cfg.Storage.MaxConns)

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}

		pgSlot, err := slot.NewPostgresSlot(ctx, pool, cfg.Storage.SlotKey)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		slog.Info("using postgres slot", "key", cfg.Storage.SlotKey)
		return pgSlot, pool.Close, nil

	default:
		slog.Info("using file slot", "path", cfg.Storage.Path)
		return slot.NewFileSlot(cfg.Storage.Path), func() {}, nil
	}
}
