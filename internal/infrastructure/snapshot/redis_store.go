package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prasety/kasirku-api/internal/config"
	"github.com/prasety/kasirku-api/internal/domain/entity"
	domainRepo "github.com/prasety/kasirku-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

// envelope is the keyed-store wire format. Unknown extra fields are ignored
// on read so older writers stay compatible.
type envelope struct {
	Cart      []entity.CartLine `json:"cart"`
	Timestamp int64             `json:"timestamp"` // epoch millis
}

// RedisStore persists cart snapshots in Redis under
// "<prefix>:<registerID>". Snapshots older than maxAge are ignored on load
// but left in place.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	maxAge    time.Duration
}

// NewRedisStore creates a snapshot store backed by the given Redis client.
func NewRedisStore(client *redis.Client, cfg *config.SnapshotConfig) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		maxAge:    cfg.MaxAge,
	}
}

var _ domainRepo.SnapshotStore = (*RedisStore)(nil)

func (s *RedisStore) Save(ctx context.Context, registerID string, lines []entity.CartLine) error {
	env := envelope{
		Cart:      lines,
		Timestamp: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal snapshot failed: %w", err)
	}

	if err := s.client.Set(ctx, s.key(registerID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, registerID string) ([]entity.CartLine, bool, error) {
	data, err := s.client.Get(ctx, s.key(registerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Corrupt snapshots degrade to an empty cart.
		return nil, false, nil
	}
	if env.Cart == nil {
		return nil, false, nil
	}

	age := time.Since(time.UnixMilli(env.Timestamp))
	if age >= s.maxAge {
		// Stale snapshots are skipped, not deleted.
		return nil, false, nil
	}

	return env.Cart, true, nil
}

func (s *RedisStore) key(registerID string) string {
	return fmt.Sprintf("%s:%s", s.keyPrefix, registerID)
}
