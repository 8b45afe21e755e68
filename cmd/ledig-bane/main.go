package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klabast/ledig-bane/internal/app"
	"github.com/klabast/ledig-bane/internal/availability"
	"github.com/klabast/ledig-bane/internal/cache"
	"github.com/klabast/ledig-bane/internal/commands"
	"github.com/klabast/ledig-bane/internal/config"
	"github.com/klabast/ledig-bane/internal/logger"
	"github.com/klabast/ledig-bane/internal/venues"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed static/index.html
var indexHTML []byte

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Check for subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hash-password":
			commands.HashPassword(os.Args[2:], cfg)
			return
		case "preview":
			commands.Preview(os.Args[2:], cfg)
			return
		}
	}

	// Parse flags
	port := flag.String("port", cfg.AppPort, "Port to listen on")
	admin := flag.Bool("admin", false, "Enable admin routes (default is serve mode)")
	flag.Parse()

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		zl.Fatal("Invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	table, err := venues.LoadFile(cfg.VenuesFile)
	if err != nil {
		zl.Fatal("Failed to load venues", zap.Error(err))
	}
	zl.Info("Venues loaded", zap.Int("count", table.Len()), zap.String("file", cfg.VenuesFile))

	var slotCache cache.SlotCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zl.Fatal("Failed to connect to slot cache", zap.Error(err))
		}
		defer client.Close()
		slotCache = cache.NewRedis(client, cfg.CacheTTL)
		zl.Info("Slot cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	// Load auth credentials (if admin mode)
	var auth *app.Auth
	if *admin {
		authFile, err := app.AuthFilePath(cfg.AuthFile)
		if err != nil {
			zl.Fatal("Failed to resolve auth file", zap.Error(err))
		}
		auth, err = app.LoadAuth(authFile, zl)
		if err != nil {
			zl.Fatal("Failed to load auth credentials", zap.Error(err))
		}
	}

	a := app.New(app.Options{
		Venues:            table,
		Source:            availability.MockSource{},
		Cache:             slotCache,
		Logger:            zl,
		Location:          loc,
		DaysAhead:         cfg.MaxDaysAhead,
		Auth:              auth,
		IndexHTML:         indexHTML,
		StaticFiles:       staticFiles,
		MaxRequestsPerMin: cfg.MaxRequestsPerMin,
	})

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           a.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	zl.Info("Starting Ledig Bane", zap.String("mode", a.Mode()), zap.String("addr", "http://localhost:"+*port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	zl.Info("Server stopped gracefully")
}
