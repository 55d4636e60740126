package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rittik987/alex.ai/pkg/model"
)

// SessionKey partitions interview state per candidate per topic.
// Every store operation is keyed by it; there is no shared state
// between sessions.
type SessionKey struct {
	UserID string
	Topic  string
}

func (k SessionKey) String() string {
	return k.UserID + ":" + k.Topic
}

// SessionStore holds coaching session state. Get returns (nil, nil)
// when no session exists for the key.
type SessionStore interface {
	Get(ctx context.Context, key SessionKey) (*model.SessionState, error)
	Put(ctx context.Context, key SessionKey, state *model.SessionState) error
	Delete(ctx context.Context, key SessionKey) error
}

// MemoryStore is a mutex-guarded in-process store, used in development
// and tests. States are deep-copied across the boundary so callers
// never alias the stored slices.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*model.SessionState)}
}

func (s *MemoryStore) Get(_ context.Context, key SessionKey) (*model.SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[key.String()]
	if !ok {
		return nil, nil
	}
	return copyState(state), nil
}

func (s *MemoryStore) Put(_ context.Context, key SessionKey, state *model.SessionState) error {
	if state == nil {
		return errors.New("nil session state")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key.String()] = copyState(state)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key SessionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key.String())
	return nil
}

func copyState(in *model.SessionState) *model.SessionState {
	out := *in
	out.Turns = make([]model.ConversationTurn, len(in.Turns))
	copy(out.Turns, in.Turns)
	return &out
}

// RedisStore persists session state as JSON values with a TTL, so an
// abandoned interview expires on its own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "coach:session:"

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key SessionKey) (*model.SessionState, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var state model.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Put(ctx context.Context, key SessionKey, state *model.SessionState) error {
	if state == nil {
		return errors.New("nil session state")
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key.String(), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key SessionKey) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key.String()).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
