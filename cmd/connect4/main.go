package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/repository/postgres"
	"github.com/iamasit07/4-in-a-row/console/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionID, err := uid.GenerateSessionID()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Optional round history in Postgres
	var db *sql.DB
	var pgRecorder game.RoundRecorder
	if cfg.DatabaseURL != "" {
		db, err = postgres.InitDB(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		log.Println("[POSTGRES] Running database migrations...")
		if err := postgres.RunMigrations(ctx, db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		if err := postgres.NewSessionRepo(db).CreateSession(ctx, sessionID, cfg.ScorePolicy); err != nil {
			log.Fatalf("Failed to register session: %v", err)
		}
		pgRecorder = postgres.NewRecorder(db)
	}

	// 2. Optional tally cache in Redis, the game goes on without it
	var redisClient *goredis.Client
	var cache *redis.TallyCache
	var cacheRecorder game.RoundRecorder
	if cfg.RedisURL != "" {
		redisClient, err = redis.InitRedis(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Printf("[REDIS] Warning: %v. Continuing without Redis.", err)
		} else {
			cache = redis.NewTallyCache(redisClient, cfg.SessionTTL)
			cacheRecorder = cache
		}
	}

	var closeOnce sync.Once
	closeStores := func() {
		closeOnce.Do(func() {
			if redisClient != nil {
				redisClient.Close()
			}
			if db != nil {
				db.Close()
			}
		})
	}
	defer closeStores()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("[SESSION] Interrupted, shutting down...")
		cancel()
		closeStores()
		os.Exit(130)
	}()

	recorders := game.NewRecorders(cfg.RecorderTimeout, pgRecorder, cacheRecorder)
	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	session := game.NewSession(sessionID, prompter, cfg.ScorePolicy, recorders)

	log.Printf("[SESSION] Starting session %s (score policy: %s, recorders: %d)", sessionID, cfg.ScorePolicy, recorders.Len())
	tally, err := session.Run(ctx)
	if err != nil && !errors.Is(err, console.ErrInputClosed) {
		log.Printf("[SESSION] Session %s ended with error: %v", sessionID, err)
		closeStores()
		os.Exit(1)
	}
	if errors.Is(err, console.ErrInputClosed) {
		log.Printf("[SESSION] Input closed, ending session %s", sessionID)
	}
	log.Printf("[SESSION] Session %s finished after %d rounds, tally X=%d O=%d", sessionID, session.Rounds(), tally.X, tally.O)

	if cache != nil {
		if stats, err := cache.LifetimeStats(ctx); err == nil {
			log.Printf("[REDIS] Lifetime stats: %v", stats)
		}
	}
}
