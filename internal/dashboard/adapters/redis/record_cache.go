package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
)

// Client is the subset of goredis.Cmdable the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

type RecordCache struct {
	rdb Client
}

func NewRecordCache(rdb Client) *RecordCache {
	return &RecordCache{rdb: rdb}
}

var _ ports.RecordCachePort = (*RecordCache)(nil)

// Connect dials redis and checks it answers before handing out the client.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (c *RecordCache) Get(ctx context.Context, key string) ([]domain.Record, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var records []domain.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("decode cached records: %w", err)
	}
	return records, true, nil
}

func (c *RecordCache) Set(ctx context.Context, key string, records []domain.Record, ttl time.Duration) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
