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

	redisv9 "github.com/redis/go-redis/v9"

	"equity_backend/internal/app/di"
	"equity_backend/internal/app/router"
	"equity_backend/internal/app/scheduler"
	"equity_backend/internal/platform/config"
	"equity_backend/internal/platform/db"
	appredis "equity_backend/internal/platform/redis"
)

// 定期更新1回あたりの上限
const refreshTimeout = 30 * time.Minute

func main() {
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatal(err)
	}

	// db
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := appredis.NewRedisClient(context.Background(), cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache:", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	app := di.NewApp(cfg, gdb, rdb)

	// 定期更新
	if cfg.Refresh.Cron != "" {
		s, err := scheduler.New(cfg.Refresh.Cron, app.Ingest, refreshTimeout)
		if err != nil {
			log.Fatal(err)
		}
		s.Start()
		defer s.Stop()
	}

	if cfg.AzureML.Endpoint == "" {
		log.Println("[WARN] AZUREML_ENDPOINT is not set. /azureml will report failures.")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(app.Handlers()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	log.Println("[INFO] listening on", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("[ERROR] server shutdown:", err)
	}
}
