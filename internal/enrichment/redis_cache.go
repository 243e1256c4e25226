package enrichment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache keeps successful lookups for TTL. Registry data changes
// rarely, and both services rate-limit anonymous callers.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisCache(opts RedisOptions, logger *zap.Logger) *RedisCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
		ttl: ttl,
		log: logger,
	}
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (Prefill, bool) {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("lookup cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var p Prefill
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, false
	}
	return p, true
}

func (r *RedisCache) Set(ctx context.Context, key string, p Prefill) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.log.Warn("lookup cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
