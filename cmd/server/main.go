package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"

	"photofeed/internal/api/middleware"
	"photofeed/internal/api/routes"
	"photofeed/internal/config"
	"photofeed/internal/core/interactions"
	"photofeed/internal/feeds"
	"photofeed/internal/share"
	"photofeed/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger := newLogger(cfg.LogLevel)

	kv, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}
	defer kv.Close()

	interactionStore := store.New(kv, logger)

	httpClient := &http.Client{Timeout: cfg.FetchTimeout()}
	repo := feeds.NewPostRepository(
		feeds.NewFeedClient(httpClient, cfg.FeedURL),
		feeds.NewImageClient(httpClient, cfg.RandomImageURL),
		cfg.CacheTTL(),
		logger,
	)

	strategies := []interactions.ShareStrategy{
		share.NewNative(cfg.Share.NativeCommand),
		share.NewClipboard(),
		share.NewFile(cfg.Share.SpoolDir),
	}
	service := interactions.NewService(interactionStore, strategies, logger)

	// Keep the feed cache warm; a failed warm is retried next tick
	warmer := cron.New()
	if _, err := warmer.AddFunc("@every "+cfg.CacheTTL().String(), func() {
		if _, err := repo.FetchAll(context.Background()); err != nil {
			logger.Warn("feed cache warm failed", "error", err)
		}
	}); err != nil {
		log.Fatal("Failed to schedule cache warmer: ", err)
	}
	warmer.Start()
	defer warmer.Stop()

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())
	r.Use(rateLimiter.Middleware)

	routes.RegisterFeedRoutes(r, repo, service)
	routes.RegisterInteractionRoutes(r, repo, service)
	routes.RegisterPreferenceRoutes(r, interactionStore)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	logger.Info("photofeed starting",
		"addr", cfg.ListenAddr,
		"feed_url", cfg.FeedURL,
		"store_driver", cfg.Store.Driver)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}

// openStore picks the KeyValue backend per config. The postgres driver
// runs goose migrations before use, like any other schema-owning
// deployment.
func openStore(cfg config.Config) (store.KeyValue, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, err
		}
		if err := goose.SetDialect("postgres"); err != nil {
			db.Close()
			return nil, err
		}
		if err := goose.Up(db, cfg.Store.MigrationsDir); err != nil {
			db.Close()
			return nil, err
		}
		return store.NewPostgresKV(db), nil
	case "memory":
		return store.NewMemoryKV(), nil
	default:
		return store.OpenSQLite(cfg.Store.Path)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
