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

	"github.com/scam165/anti-scam-platform/internal/article"
	"github.com/scam165/anti-scam-platform/internal/chat"
	"github.com/scam165/anti-scam-platform/internal/config"
	"github.com/scam165/anti-scam-platform/internal/db"
	"github.com/scam165/anti-scam-platform/internal/httpapi"
	"github.com/scam165/anti-scam-platform/internal/models"
	"github.com/scam165/anti-scam-platform/internal/store/rabbitmq"
	"github.com/scam165/anti-scam-platform/internal/store/redisstore"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)
	if err := gdb.AutoMigrate(&models.User{}, &article.Article{}, &chat.Conversation{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Fatalf("rabbit publisher: %v", err)
	}
	defer publisher.Close()

	cache := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cache.Ping(pingCtx); err != nil {
		log.Printf("redis unreachable, article list caching disabled: %v", err)
		cache = nil
	}
	cancel()

	router := httpapi.NewRouter(gdb, cfg, cache, publisher)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
