package dedup

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config controls how long delivered-event markers are kept. The TTL only
// needs to outlive the trigger infrastructure's redelivery window.
type Config struct {
	TTL       time.Duration `env:"DEDUP_TTL" envDefault:"24h"`                          // TTL is the retention of delivery markers.
	KeyPrefix string        `env:"DEDUP_KEY_PREFIX" envDefault:"pushrelay:delivered:"`  // KeyPrefix namespaces the markers in a shared Redis.
	Enabled   bool          `env:"DEDUP_ENABLED" envDefault:"true"`                     // Enabled turns the guard off entirely when false.
}

// Guard records delivered events in Redis so a redelivered change event does
// not produce a second push notification. Markers are written only after a
// successful send, keeping at-least-once semantics when a send fails.
type Guard struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// New creates a guard over an established Redis client.
func New(client *redis.Client, cfg Config) *Guard {
	return &Guard{
		client: client,
		ttl:    cfg.TTL,
		prefix: cfg.KeyPrefix,
	}
}

// Seen reports whether the key was already marked delivered.
func (g *Guard) Seen(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Exists(ctx, g.prefix+key).Result()
	if err != nil {
		return false, errors.Join(ErrLookup, err)
	}
	return n > 0, nil
}

// MarkDelivered records the key after a successful delivery. NX keeps the
// original marker's TTL when two concurrent handlers race on the same event.
func (g *Guard) MarkDelivered(ctx context.Context, key string) error {
	if err := g.client.SetNX(ctx, g.prefix+key, "1", g.ttl).Err(); err != nil {
		return errors.Join(ErrMark, err)
	}
	return nil
}
