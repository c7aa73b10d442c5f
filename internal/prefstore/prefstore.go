// Package prefstore is durable key/value persistence for per-profile
// state (favorites, session). The backend is swappable: an in-memory map
// for tests, a state directory on disk, Redis, or Postgres.
package prefstore

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is the persistence contract. Read reports ok=false for an absent
// key; callers that need structured data go through ReadJSON, which also
// treats unparsable payloads as absent.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, bool)
	Write(ctx context.Context, key string, raw []byte) error
	Remove(ctx context.Context, key string) error
}

// ReadJSON unmarshals the stored payload into v. A missing key or a
// corrupt payload both report false; corruption never reaches the caller
// as an error.
func ReadJSON(ctx context.Context, s Store, key string, v any) bool {
	raw, ok := s.Read(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false
	}
	return true
}

func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, raw)
}

// Scoped prefixes every key with a scope so one backend can hold state for
// many browser profiles without the managers knowing about scoping.
func Scoped(s Store, scope string) Store {
	return &scoped{inner: s, prefix: scope + ":"}
}

type scoped struct {
	inner  Store
	prefix string
}

func (s *scoped) Read(ctx context.Context, key string) ([]byte, bool) {
	return s.inner.Read(ctx, s.prefix+key)
}

func (s *scoped) Write(ctx context.Context, key string, raw []byte) error {
	return s.inner.Write(ctx, s.prefix+key, raw)
}

func (s *scoped) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.prefix+key)
}

// Memory is a volatile Store, used in tests and as the fallback backend.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Read(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), raw...), true
}

func (s *Memory) Write(_ context.Context, key string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), raw...)
	return nil
}

func (s *Memory) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
