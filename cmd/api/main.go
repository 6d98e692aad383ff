// Command api runs the profile API as a plain HTTP server for local development.
// Callers authenticate with an HS256 bearer token signed with JWT_SECRET; -dev-token prints one.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/bhajian/gigbusters-profile/docs"
	"github.com/bhajian/gigbusters-profile/internal/config"
	"github.com/bhajian/gigbusters-profile/internal/di"
	"github.com/bhajian/gigbusters-profile/internal/middleware"
	"github.com/bhajian/gigbusters-profile/pkg/auth"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	devToken := flag.String("dev-token", "", "print a bearer token for this user id and exit")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	loader := config.NewLoader(os.Getenv("CONFIG_FILE"))
	cfg, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *devToken != "" {
		token, err := auth.GenerateDevToken(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, *devToken, "", 24*time.Hour)
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}
		fmt.Println(token)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, cleanup, err := di.InitializeAPI(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer cleanup()
	logger := container.Logger

	watcher, err := config.NewConfigWatcher(loader, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to start config watcher", zap.Error(err))
	}
	defer watcher.Stop()
	watcher.OnChange(func(next *config.Config) {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(next.LogLevel)); err == nil {
			container.LogLevel.SetLevel(level)
		}
	})

	validator, err := auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.Auth.JWTSecret,
		Issuer:    cfg.Auth.JWTIssuer,
	})
	if err != nil {
		logger.Fatal("Failed to create JWT validator", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      container.Router(middleware.JWTAuth(validator, logger)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", srv.Addr),
			zap.String("environment", string(cfg.Environment)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
}
