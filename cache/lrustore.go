package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

// LRUStore is an in-process cache with entry expiry, JSON-encoding values so
// callers can store arbitrary structures behind the same Get/Set/Delete
// contract.
type LRUStore struct {
	lru *expirable.LRU[string, []byte]
}

func NewLRUStore(size int, ttl time.Duration) *LRUStore {
	return &LRUStore{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (s *LRUStore) Get(ctx context.Context, key string, v interface{}) error {
	raw, ok := s.lru.Get(key)
	if !ok {
		return errors.Errorf("cache miss for key %q", key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrap(err, "cache couldn't unmarshal value")
	}
	return nil
}

func (s *LRUStore) Set(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "cache couldn't marshal value")
	}
	s.lru.Add(key, raw)
	return nil
}

func (s *LRUStore) Delete(ctx context.Context, key string) error {
	s.lru.Remove(key)
	return nil
}
