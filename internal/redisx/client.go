package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{Addr: addr})
	_ = r.WithTimeout(2 * time.Second)
	return r
}

func Exists(ctx context.Context, rdb *redis.Client, key string) (bool, error) {
	n, err := rdb.Exists(ctx, key).Result()
	return n > 0, err
}

// GetBytes returns the raw value at key, or nil when the key is absent.
// Callers validate the payload themselves; stored blobs are never
// trusted blindly.
func GetBytes(ctx context.Context, rdb *redis.Client, key string) []byte {
	b, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return b
}
