package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"10s"`
}

const (
	keyPrefix  = "lock:"
	retryDelay = 25 * time.Millisecond
)

// KEYS[1] = lock key, ARGV[1] = owner token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisLocker(ctx context.Context, cfg RedisConfig, log *zap.Logger) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	ttl := cfg.LockTTL
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisLocker{client: client, ttl: ttl, log: log.Named("lock")}, nil
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = keyPrefix + key
	token := uuid.NewString()
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "lock %s", key)
		}
		if ok {
			break
		}
		t := time.NewTimer(retryDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn("release lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

func (l *RedisLocker) Close() error {
	return l.client.Close()
}
