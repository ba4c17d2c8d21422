package redis

import (
	"context"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}

	return data, nil
}

type tokenDenylist struct {
	repository RedisRepository
}

func NewTokenDenylist(repository RedisRepository) TokenDenylist {
	return &tokenDenylist{repository: repository}
}

func (d *tokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already past expiry; nothing to remember.
		return nil
	}
	return d.repository.Set(ctx, constvars.RedisTokenDenylistPrefix+jti, "revoked", ttl)
}

func (d *tokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	data, err := d.repository.Get(ctx, constvars.RedisTokenDenylistPrefix+jti)
	if err != nil {
		return false, err
	}
	return data != "", nil
}
