package token

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+jti, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisStore) Resolve(ctx context.Context, jti string) (uint, error) {
	val, err := s.rdb.Get(ctx, sessionKeyPrefix+jti).Result()
	if err == redis.Nil {
		return 0, ErrInvalid
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrInvalid
	}
	return uint(id), nil
}

func (s *RedisStore) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+jti).Err()
}

var _ Store = (*RedisStore)(nil)
