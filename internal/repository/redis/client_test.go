package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TallyCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewTallyCache(client, ttl), mr
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := InitRedis(context.Background(), mr.Addr(), "")
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestInitRedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	client, err := InitRedis(context.Background(), addr, "")
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestTallyCacheRecordRound(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	records := []domain.RoundRecord{
		{RoundID: "r1", SessionID: "s1", Number: 1, Outcome: domain.RoundOutcome{Status: domain.StatusWon, Winner: domain.PlayerX}, Moves: []int{1, 7, 1, 7, 1, 7, 1}},
		{RoundID: "r2", SessionID: "s1", Number: 2, Outcome: domain.RoundOutcome{Status: domain.StatusTie}, Moves: []int{4}},
		{RoundID: "r3", SessionID: "s1", Number: 3, Outcome: domain.RoundOutcome{Status: domain.StatusWon, Winner: domain.PlayerO}, Moves: []int{2}},
	}
	for _, r := range records {
		require.NoError(t, cache.RecordRound(ctx, r))
	}

	stats, err := cache.LifetimeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"rounds": 3, "x_wins": 1, "o_wins": 1, "ties": 1}, stats)

	assert.Equal(t, "3", mr.HGet(sessionKey("s1"), "rounds"))
	assert.Equal(t, "r3", mr.HGet(sessionKey("s1"), "last_round"))
	assert.Equal(t, time.Hour, mr.TTL(sessionKey("s1")))

	list, err := mr.List(roundsKey("s1"))
	require.NoError(t, err)
	require.Len(t, list, 3)

	var first roundSummary
	require.NoError(t, json.Unmarshal([]byte(list[0]), &first))
	assert.Equal(t, "X", first.Winner)
	assert.Equal(t, []int{1, 7, 1, 7, 1, 7, 1}, first.Moves)

	var tie roundSummary
	require.NoError(t, json.Unmarshal([]byte(list[1]), &tie))
	assert.Equal(t, "tie", tie.Status)
	assert.Empty(t, tie.Winner)
}

func TestTallyCacheRecordTally(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.RecordTally(ctx, "s2", domain.ScoreTally{X: 2, O: 5}))

	assert.Equal(t, "2", mr.HGet(sessionKey("s2"), "x"))
	assert.Equal(t, "5", mr.HGet(sessionKey("s2"), "o"))
	// no TTL configured, the snapshot stays
	assert.Equal(t, time.Duration(0), mr.TTL(sessionKey("s2")))
}

func TestLifetimeStatsEmpty(t *testing.T) {
	cache, _ := newTestCache(t, 0)

	stats, err := cache.LifetimeStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
