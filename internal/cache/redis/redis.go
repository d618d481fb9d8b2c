package redis

import (
	"context"
	"errors"
	"time"

	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrNotFoundInCache is returned on cache miss.
var ErrNotFoundInCache = errors.New("not found in cache")

type Cache struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Cache {
	cli := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
	})

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	val, err := c.cli.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFoundInCache
		}
		return err
	}

	return json.Unmarshal(val, dest)
}

func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) {
	bytes, err := json.Marshal(val)
	if err != nil {
		zap.L().Error("failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return
	}

	if err = c.cli.Set(ctx, key, bytes, t).Err(); err != nil {
		zap.L().Error("failed to set cache key", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Error("failed to delete cache key", zap.String("key", key), zap.Error(err))
	}
}

