package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/adipranaya/demo-dashboard-api/config"
	"github.com/adipranaya/demo-dashboard-api/internal/application"
	"github.com/adipranaya/demo-dashboard-api/internal/container"
	"github.com/adipranaya/demo-dashboard-api/internal/infrastructure/memory"
	"github.com/adipranaya/demo-dashboard-api/internal/infrastructure/secrets"
	"github.com/adipranaya/demo-dashboard-api/internal/interface/middleware"
	"github.com/adipranaya/demo-dashboard-api/internal/router"
	"github.com/adipranaya/demo-dashboard-api/pkg/helpers"
	"github.com/adipranaya/demo-dashboard-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// The directory and counter are created exactly once here and live until
	// process stop; handlers receive them through the container.
	directory := memory.NewDirectory()
	metrics := application.NewMetrics(directory)

	var provider secrets.Provider
	switch cfg.SecretsProvider {
	case "aws":
		p, err := secrets.NewManagerProvider(ctx, logger)
		if err != nil {
			log.Fatalf("failed to init secrets manager client: %v", err)
		}
		provider = p
	default:
		provider = secrets.NewEnvProvider(logger)
	}

	// Provide singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetDirectory(directory)
	container.SetMetrics(metrics)
	container.SetSecrets(provider)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	// CORS: the dashboard may be served from anywhere, so default to any origin.
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	reg.Use(middleware.CountRequests(metrics))
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
