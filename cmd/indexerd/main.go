package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stash-indexer/config"
	"stash-indexer/internal/affix"
	"stash-indexer/internal/api"
	"stash-indexer/internal/db"
	"stash-indexer/internal/feed"
	"stash-indexer/internal/indexer"
	"stash-indexer/internal/logger"
	"stash-indexer/internal/store"
)

var (
	configPath string
	cursorFlag string
	maxUpdates int
)

var rootCmd = &cobra.Command{
	Use:           "indexerd",
	Short:         "Public stash feed indexer",
	Long:          `Follows the public stash change feed, normalizes priced rare items and tracks their listing life cycle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		gormDB, err := db.Init(&cfg.Database, log)
		if err != nil {
			return err
		}
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
		return nil
	},
}

func init() {
	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "./config/config.yaml" // Default path for local development
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfig, "path to the YAML configuration")
	rootCmd.Flags().StringVar(&cursorFlag, "cursor", "", "start from this cursor instead of the stored one")
	rootCmd.Flags().IntVar(&maxUpdates, "max-updates", -1, "stop after this many committed batches (0 runs forever)")
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "indexerd:", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}
	if maxUpdates >= 0 {
		cfg.Indexer.MaxUpdates = maxUpdates
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("configuration loaded", zap.String("path", configPath))
	return cfg, log, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	// Initialize database
	gormDB, err := db.Init(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	gormStore := store.NewGormStore(gormDB)
	var listings store.Store = gormStore
	if cfg.Store.SnapshotCacheTTL > 0 {
		listings = store.NewCachedStore(gormStore, cfg.Store.SnapshotCacheTTL)
	}
	var cursors store.CursorStore = gormStore
	if cfg.Store.CursorBackend == config.CursorBackendFile {
		cursors = store.NewFileCursorStore(cfg.Store.CursorFile)
	}
	log.Info("data store initialized",
		zap.String("cursor_backend", cfg.Store.CursorBackend),
		zap.Duration("snapshot_cache_ttl", cfg.Store.SnapshotCacheTTL))

	if err := affix.DefaultRegistry.Validate(); err != nil {
		return fmt.Errorf("rule registry is incomplete: %w", err)
	}
	poller := feed.NewPoller(feed.NewHTTPClient(&cfg.Feed, log), cfg.Feed.MinInterval, log)
	svc := indexer.NewService(&cfg.Indexer, poller, listings, cursors, affix.NewEngine(nil), log)

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var server *http.Server
	if cfg.Server.IsEnabled() {
		gin.SetMode(gin.ReleaseMode)
		router := api.NewRouter(&cfg.Server, api.NewHandler(listings, svc, log))
		server = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		}

		// Start the server in a goroutine
		go func() {
			log.Info("HTTP server starting", zap.Int("port", cfg.Server.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("HTTP server ListenAndServe", zap.Error(err))
				stop()
			}
		}()
	}

	// Blocks until a signal arrives or max_updates batches were committed.
	runErr := svc.Run(ctx, cursorFlag)
	log.Info("indexer finished, stopping services")

	if server != nil {
		// Create a deadline to wait for.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server Shutdown", zap.Error(err))
		}
	}

	log.Info("indexer gracefully stopped")
	return runErr
}
