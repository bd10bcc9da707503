package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/Samrat25/HireX/internal/common"
)

type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, common.NewError(common.CodeInternal, "failed to read key "+key, err)
	}
	return value, nil
}

func (s *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to write key "+key, err)
	}
	return nil
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete key "+key, err)
	}
	return nil
}
