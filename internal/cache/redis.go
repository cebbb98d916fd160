package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// Redis is a go-redis backed Cache. Expiry is delegated to redis TTLs.
type Redis struct {
	client *redis.Client
}

func NewRedis(cfg Config) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	var payload string
	switch v := value.(type) {
	case string:
		payload = v
	case []byte:
		payload = string(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling cache value: %w", err)
		}
		payload = string(data)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
