package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkdeck/internal/config"
	"github.com/MrSnakeDoc/linkdeck/internal/editor"
	"github.com/MrSnakeDoc/linkdeck/internal/httpserver"
	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkdeck/internal/index"
	"github.com/MrSnakeDoc/linkdeck/internal/logger"
	"github.com/MrSnakeDoc/linkdeck/internal/redis"
	"github.com/MrSnakeDoc/linkdeck/internal/scheduler"
	"github.com/MrSnakeDoc/linkdeck/internal/sources/defaults"
	redisstore "github.com/MrSnakeDoc/linkdeck/internal/store/redis"
	"github.com/MrSnakeDoc/linkdeck/internal/utils"
	"github.com/MrSnakeDoc/linkdeck/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.DefaultsReloader
	gc          *scheduler.SessionGC
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Block store and render cache
	store := redisstore.NewBlockStore(redisClient)
	cache := index.NewRenderCache()

	// Locked-block defaults (empty set when no file is configured)
	defaultsSet := defaults.NewSet()

	var reloader *scheduler.DefaultsReloader
	var reloadTrigger chan struct{}
	if cfg.DefaultsFile != "" {
		loggerClient.Info("defaults file configured, initializing reloader",
			logger.String("file", cfg.DefaultsFile))
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewDefaultsReloader(
			cfg.DefaultsFile,
			defaultsSet,
			loggerClient,
			cfg.ReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("defaults file not configured, locked blocks disabled")
	}

	// Edit session registry and idle-session sweeper
	sessions := editor.NewRegistry(cfg.SessionTTL)
	gc := scheduler.NewSessionGC(sessions, loggerClient, cfg.GCInterval)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Build:         version.Get(),
		TimeNow:       time.Now,
		Store:         store,
		Cache:         cache,
		Defaults:      defaultsSet,
		Sessions:      sessions,
		EditorToken:   cfg.EditorToken,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		reloader:    reloader,
		gc:          gc,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting linkdeck v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("linkdeck %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start defaults reloader (loads the file and starts periodic refresh)
	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start defaults reloader: %w", err)
		}
		a.logger.Info("defaults reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	// Start idle session sweeper
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session sweeper: %w", err)
	}
	a.logger.Info("session sweeper started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		utils.MustClose(a.redisClient)
		a.logger.Info("Redis closed")
	}

	a.logger.Info("linkdeck stopped cleanly")
	return nil
}
