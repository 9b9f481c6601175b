package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Sequence allocates stable integer ids per entity kind using Redis INCR.
// Key format: seq:<entity>
type Sequence struct {
	client *redis.Client
}

// NewSequence creates a Sequence wrapping the given Redis client.
func NewSequence(client *redis.Client) *Sequence {
	return &Sequence{client: client}
}

// Next returns the next id for the named entity kind. Ids start at 1 and are
// never reused, so deleted records leave gaps.
func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	id, err := s.client.Incr(ctx, "seq:"+name).Result()
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return id, nil
}
