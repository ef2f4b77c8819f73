package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const (
	statsKey         = "connect4:stats"
	sessionKeyPrefix = "connect4:session:"
)

// InitRedis connects to Redis. A failed ping is returned so the caller can
// keep playing without the cache.
func InitRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}

	log.Println("[REDIS] Connected successfully")
	return client, nil
}

// TallyCache mirrors the live session tally and keeps lifetime win counters
// shared by every session.
type TallyCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTallyCache(client *redis.Client, ttl time.Duration) *TallyCache {
	return &TallyCache{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func roundsKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + ":rounds"
}

type roundSummary struct {
	RoundID string `json:"round_id"`
	Number  int    `json:"number"`
	Status  string `json:"status"`
	Winner  string `json:"winner,omitempty"`
	Moves   []int  `json:"moves"`
}

func (c *TallyCache) RecordRound(ctx context.Context, record domain.RoundRecord) error {
	summary, err := json.Marshal(roundSummary{
		RoundID: record.RoundID,
		Number:  record.Number,
		Status:  string(record.Outcome.Status),
		Winner:  record.WinnerMark(),
		Moves:   record.Moves,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal round summary: %w", err)
	}

	outcomeField := "ties"
	switch {
	case record.Outcome.Status == domain.StatusWon && record.Outcome.Winner == domain.PlayerX:
		outcomeField = "x_wins"
	case record.Outcome.Status == domain.StatusWon && record.Outcome.Winner == domain.PlayerO:
		outcomeField = "o_wins"
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsKey, "rounds", 1)
		pipe.HIncrBy(ctx, statsKey, outcomeField, 1)
		pipe.HSet(ctx, sessionKey(record.SessionID), "rounds", record.Number, "last_round", record.RoundID)
		pipe.RPush(ctx, roundsKey(record.SessionID), summary)
		if c.ttl > 0 {
			pipe.Expire(ctx, sessionKey(record.SessionID), c.ttl)
			pipe.Expire(ctx, roundsKey(record.SessionID), c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache round %s: %w", record.RoundID, err)
	}
	return nil
}

func (c *TallyCache) RecordTally(ctx context.Context, sessionID string, tally domain.ScoreTally) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, sessionKey(sessionID), "x", tally.X, "o", tally.O)
		if c.ttl > 0 {
			pipe.Expire(ctx, sessionKey(sessionID), c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache tally for session %s: %w", sessionID, err)
	}
	return nil
}

// LifetimeStats returns the counters accumulated over every recorded round.
func (c *TallyCache) LifetimeStats(ctx context.Context) (map[string]int64, error) {
	raw, err := c.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	stats := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter %s=%q: %w", field, value, err)
		}
		stats[field] = n
	}
	return stats, nil
}
