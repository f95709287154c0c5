package mykv

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopcart/lib/mystore"
)

type Entry struct {
	Key   string
	Value string `datastore:",noindex"`
}

type entityStore struct {
	entries mystore.Store[Entry]
}

func NewEntityStore(entries mystore.Store[Entry]) Store {
	return &entityStore{
		entries: entries,
	}
}

func (s *entityStore) Get(c context.Context, key string) (string, bool, error) {
	entry, found, err := s.entries.Get(c, key)
	if err != nil {
		return "", false, fmt.Errorf("error getting entry %s: %w", key, err)
	}
	if !found {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *entityStore) Put(c context.Context, key string, value string) error {
	err := s.entries.Put(c, key, Entry{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("error putting entry %s: %w", key, err)
	}
	return nil
}
