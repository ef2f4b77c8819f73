package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type Config struct {
	ScorePolicy          domain.TallyPolicy
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	SessionTTL           time.Duration
	RecorderTimeout      time.Duration
}

func LoadConfig() *Config {
	policyName := GetEnv("SCORE_POLICY", string(domain.PolicyIndependent))
	policy, ok := domain.ParseTallyPolicy(policyName)
	if !ok {
		log.Printf("[CONFIG] Unknown SCORE_POLICY %q, using %s", policyName, policy)
	}

	// Storage is opt-in; an empty URL keeps the game fully offline
	dbURL := GetEnv("DATABASE_URL", "")
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 5)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 5)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)

	redisURL := GetEnv("REDIS_URL", "")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 24*60)

	recorderTimeoutSec := GetEnvAsInt("RECORDER_TIMEOUT_SECONDS", 3)

	return &Config{
		ScorePolicy:          policy,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		RedisURL:             redisURL,
		RedisPassword:        redisPassword,
		SessionTTL:           time.Duration(sessionTTLMin) * time.Minute,
		RecorderTimeout:      time.Duration(recorderTimeoutSec) * time.Second,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
