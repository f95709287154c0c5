package mykv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{
		client: client,
	}
}

func (s *redisStore) Get(c context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(c, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error getting key %s from redis: %w", key, err)
	}
	return value, true, nil
}

func (s *redisStore) Put(c context.Context, key string, value string) error {
	// no expiry: values live until overwritten
	err := s.client.Set(c, key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("error setting key %s in redis: %w", key, err)
	}
	return nil
}
