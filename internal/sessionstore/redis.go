package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/session"
)

const defaultTTL = 2 * time.Hour

// RedisStore keeps session and set state in Redis as JSON with a TTL, so
// abandoned sessions age out on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a store backed by the given client. A non-positive
// ttl falls back to the default.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("quiz:session:%s", id.String())
}

func setKey(id uuid.UUID) string {
	return fmt.Sprintf("quiz:set:%s", id.String())
}

// SaveSession stores a session snapshot, refreshing its TTL.
func (s *RedisStore) SaveSession(ctx context.Context, state session.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(state.ID), data, s.ttl).Err()
}

// GetSession retrieves a session snapshot.
func (s *RedisStore) GetSession(ctx context.Context, id uuid.UUID) (session.State, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return session.State{}, ErrSessionNotFound
	}
	if err != nil {
		return session.State{}, fmt.Errorf("get session: %w", err)
	}
	var state session.State
	if err := json.Unmarshal(data, &state); err != nil {
		return session.State{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return state, nil
}

// SaveSet stores an uploaded question set under the given ID.
func (s *RedisStore) SaveSet(ctx context.Context, id uuid.UUID, set question.Set) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal set: %w", err)
	}
	return s.client.Set(ctx, setKey(id), data, s.ttl).Err()
}

// GetSet retrieves an uploaded question set.
func (s *RedisStore) GetSet(ctx context.Context, id uuid.UUID) (question.Set, error) {
	data, err := s.client.Get(ctx, setKey(id)).Bytes()
	if err == redis.Nil {
		return question.Set{}, ErrSetNotFound
	}
	if err != nil {
		return question.Set{}, fmt.Errorf("get set: %w", err)
	}
	var set question.Set
	if err := json.Unmarshal(data, &set); err != nil {
		return question.Set{}, fmt.Errorf("unmarshal set: %w", err)
	}
	return set, nil
}
