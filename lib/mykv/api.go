// Package mykv stores string values under string keys, the way a browser's local storage does.
package mykv

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/MarcGrol/shopcart/lib/mystore"
)

//go:generate mockgen -source=api.go -package mykv -destination kv_mock.go Store
type Store interface {
	Get(c context.Context, key string) (string, bool, error)
	Put(c context.Context, key string, value string) error
}

// New uses redis when an address is given and the entity store otherwise
func New(c context.Context, redisAddr string) (Store, func(), error) {
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr: redisAddr,
		})
		return NewRedisStore(client), func() {
			client.Close()
		}, nil
	}

	entries, cleanup, err := mystore.New[Entry](c)
	if err != nil {
		return nil, func() {}, err
	}
	return NewEntityStore(entries), cleanup, nil
}
