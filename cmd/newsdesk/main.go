package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/internal/auth"
	"newsdesk/internal/config"
	"newsdesk/internal/db"
	"newsdesk/internal/identity"
	"newsdesk/internal/logger"
	"newsdesk/internal/middleware"
	"newsdesk/internal/server"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env необязателен: в продакшене переменные приходят из окружения
	godotenv.Load()

	logger.Init()
	defer logger.Log.Info("Application stopped")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка конфигурации
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Log.Fatalf("Config load error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.Fatalf("Config validation error: %v", err)
	}

	// Инициализация БД
	database, err := db.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("DB connection error: %v", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		logger.Log.Fatalf("Schema error: %v", err)
	}

	// Шлюз авторизации: провайдер аутентификации + роли из профилей
	provider := identity.NewClient(cfg.IdentityURL)
	gate := auth.NewGate(provider, database)

	srv := server.NewServer(database, gate, cfg.ShareHashtag)

	mux := srv.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/", http.FileServer(http.Dir(cfg.WebDir)))

	// Цепочка middleware: защита дашборда ближе всего к обработчикам
	handler := middleware.DashboardGuard(gate, mux)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)

	httpServer := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		logger.Log.Infof("Starting HTTP server on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down...")
	ctxShutdown, cancelShutdown := context.WithTimeout(ctx, 5*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		logger.Log.Fatalf("Forced shutdown: %v", err)
	}
}
