package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	handler "github.com/vendio/api/internal/adapters/handler/http"
	"github.com/vendio/api/internal/adapters/registry/memory"
	registryredis "github.com/vendio/api/internal/adapters/registry/redis"
	repo "github.com/vendio/api/internal/adapters/repository/postgres"
	"github.com/vendio/api/internal/config"
	"github.com/vendio/api/internal/core/ports"
	"github.com/vendio/api/internal/core/services"
	"github.com/vendio/api/internal/token"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file, using environment as-is")
	}
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DBConnString())
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	var registry ports.RefreshRegistry
	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		registry = registryredis.NewRegistry(client)
		log.Info("using redis refresh registry", "addr", cfg.RedisAddr)
	} else {
		registry = memory.NewRegistry()
		log.Info("using in-memory refresh registry")
	}

	codec := token.NewCodec([]byte(cfg.AccessSecret), []byte(cfg.RefreshSecret),
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	tokenSvc := services.NewTokenService(codec, registry)
	authSvc := services.NewAuthService(repo.NewUserRepository(db))
	productSvc := services.NewProductService(repo.NewProductRepository(db))

	authHandler := handler.NewAuthHandler(authSvc, tokenSvc, cfg.Production())
	productHandler := handler.NewProductHandler(productSvc)
	router := handler.NewHandler(authHandler, productHandler, tokenSvc)

	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.Port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
