// Package cache keeps per-kind catalog list snapshots in Redis. It is
// strictly an accelerator: every operation fails safe, so a broken or absent
// Redis behaves like a cache that never holds anything and catalog reads keep
// working off the database.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// listTTL bounds staleness for list snapshots that outlive their
// invalidation, e.g. when a mutation's delete is lost to a Redis hiccup.
const listTTL = 5 * time.Minute

// Client is the catalog list cache. A nil *Client is valid and caches
// nothing, which is how tests and cache-less deployments run.
type Client struct {
	rdb *redis.Client
}

// New connects the list cache to Redis.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// listKey names the snapshot slot for one catalog kind.
func listKey(kind string) string {
	return "catalog:" + kind + ":list"
}

// GetList returns the cached list payload for a kind, or nil on a miss or
// any Redis failure.
func (c *Client) GetList(ctx context.Context, kind string) []byte {
	if c == nil || c.rdb == nil {
		return nil
	}
	payload, err := c.rdb.Get(ctx, listKey(kind)).Bytes()
	if err != nil {
		return nil
	}
	return payload
}

// SetList stores a kind's list payload. Redis errors are swallowed.
func (c *Client) SetList(ctx context.Context, kind string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, listKey(kind), payload, listTTL)
}

// InvalidateList drops a kind's snapshot after a mutation.
func (c *Client) InvalidateList(ctx context.Context, kind string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, listKey(kind))
}
