package kvstore

import (
	"context"
	"time"

	goRedis "github.com/redis/go-redis/v9"
)

// RedisBackend stores slots as plain Redis string keys. Optional driver for
// deployments that want the blob off the local disk; the Backend surface stays
// synchronous, each call runs under a short internal timeout.
type RedisBackend struct {
	client  *goRedis.Client
	timeout time.Duration
}

// OpenRedis creates a Redis-backed store and performs a health check.
func OpenRedis(url, password string, db int) (*RedisBackend, error) {
	opts, err := goRedis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}

	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisBackend{
		client:  client,
		timeout: 3 * time.Second,
	}, nil
}

func (r *RedisBackend) GetItem(key string) (string, bool, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	value, err := r.client.Get(ctx, key).Result()
	if err == goRedis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisBackend) SetItem(key, value string) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisBackend) RemoveItem(key string) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.client.Del(ctx, key).Err()
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}

func (r *RedisBackend) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}
