package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

func (r *RedisCache) Obter(chave string) (string, bool) {
	val, err := r.client.Get(context.Background(), chave).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Definir(chave, valor string, ttl time.Duration) error {
	return r.client.Set(context.Background(), chave, valor, ttl).Err()
}
