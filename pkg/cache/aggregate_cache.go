package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// AggregateCacheTTL is the time-to-live for cached aggregate snapshots.
	AggregateCacheTTL = 24 * time.Hour

	aggregateCacheKeyPrefix = "aggregate"
)

// CachedAggregateItem is one item row in the denormalized aggregate snapshot.
type CachedAggregateItem struct {
	ID          uuid.UUID        `json:"id"`
	ListID      uuid.UUID        `json:"list_id"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity"`
	UnitWeight  *decimal.Decimal `json:"unit_weight,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CachedAggregateList is the denormalized read model of one (game, family)
// aggregate list, stored as a JSON value in Redis. It exists so pkg/cache has
// no dependency on domain models; services convert at the boundary.
type CachedAggregateList struct {
	ID        uuid.UUID             `json:"id"`
	GameID    uuid.UUID             `json:"game_id"`
	Family    string                `json:"family"`
	Title     string                `json:"title"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	Items     []CachedAggregateItem `json:"items"`
}

// AggregateCache provides read/write operations for aggregate-list snapshots.
// Key format: "aggregate:{gameID}:{family}". The worker deletes keys when it
// consumes list.changed events; readers repopulate on the next miss.
type AggregateCache struct {
	client *RedisClient
}

// NewAggregateCache creates an AggregateCache backed by the given RedisClient.
func NewAggregateCache(r *RedisClient) *AggregateCache {
	return &AggregateCache{client: r}
}

// Get retrieves a cached snapshot by game + family.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *AggregateCache) Get(ctx context.Context, gameID uuid.UUID, family string) (*CachedAggregateList, error) {
	data, err := c.client.Client().Get(ctx, c.key(gameID, family)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var snap CachedAggregateList
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &snap, nil
}

// Set writes a snapshot with a 24-hour TTL.
func (c *AggregateCache) Set(ctx context.Context, snap *CachedAggregateList) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	key := c.key(snap.GameID, snap.Family)
	if err := c.client.Client().Set(ctx, key, data, AggregateCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached snapshot.
func (c *AggregateCache) Delete(ctx context.Context, gameID uuid.UUID, family string) error {
	if err := c.client.Client().Del(ctx, c.key(gameID, family)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "aggregate:{gameID}:{family}"
func (c *AggregateCache) key(gameID uuid.UUID, family string) string {
	return fmt.Sprintf("%s:%s:%s", aggregateCacheKeyPrefix, gameID, family)
}
