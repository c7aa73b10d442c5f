package prefstore

import (
	"context"
	"log"

	"github.com/nestfinder/browse-api/internal/redisx"
)

// Redis backs the store with a shared Redis instance. Transient read
// errors are treated as absent, matching the fail-soft contract; write
// errors are returned so a mutation is not silently lost.
type Redis struct {
	client *redisx.Client
	prefix string
}

func NewRedis(client *redisx.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "prefs"
	}
	return &Redis{client: client, prefix: prefix}
}

func (s *Redis) Read(ctx context.Context, key string) ([]byte, bool) {
	raw, ok, err := s.client.GetBytes(ctx, s.prefix+":"+key)
	if err != nil {
		log.Printf("[WARN] prefstore redis read %s: %v", key, err)
		return nil, false
	}
	return raw, ok
}

func (s *Redis) Write(ctx context.Context, key string, raw []byte) error {
	return s.client.SetBytes(ctx, s.prefix+":"+key, raw)
}

func (s *Redis) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+":"+key)
}
