package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/klabast/ledig-bane/internal/availability"
)

// KeyPrefix namespaces every cached slot list
const KeyPrefix = "ledigbane:slots:"

// SlotCache stores generated slot lists keyed by venue and date
type SlotCache interface {
	Get(ctx context.Context, venueID string, date time.Time) ([]availability.TimeSlot, bool, error)
	Set(ctx context.Context, venueID string, date time.Time, slots []availability.TimeSlot) error
	Flush(ctx context.Context) (int, error)
}

// Key returns the cache key for a venue on a date
func Key(venueID string, date time.Time) string {
	return KeyPrefix + venueID + ":" + date.Format("2006-01-02")
}

// Connect opens a Redis client and checks that the server answers
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}

// Redis is a SlotCache backed by a Redis database
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps client; a zero ttl keeps entries until flushed
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get returns the cached slots, or false on a miss
func (r *Redis) Get(ctx context.Context, venueID string, date time.Time) ([]availability.TimeSlot, bool, error) {
	data, err := r.client.Get(ctx, Key(venueID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var slots []availability.TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false, fmt.Errorf("decode cached slots: %w", err)
	}
	return slots, true, nil
}

// Set stores slots for the configured TTL
func (r *Redis) Set(ctx context.Context, venueID string, date time.Time, slots []availability.TimeSlot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("encode slots: %w", err)
	}
	if err := r.client.Set(ctx, Key(venueID, date), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Flush deletes every key under KeyPrefix and returns how many were removed
func (r *Redis) Flush(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, KeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("redis del: %w", err)
			}
			deleted += int(n)
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

// Noop is used when no cache is configured
type Noop struct{}

func (Noop) Get(context.Context, string, time.Time) ([]availability.TimeSlot, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, string, time.Time, []availability.TimeSlot) error {
	return nil
}

func (Noop) Flush(context.Context) (int, error) {
	return 0, nil
}
