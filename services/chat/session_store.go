package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"scholaris/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "chat:sess:"

// SessionStore holds conversation state between turns. Get returns a fresh
// idle session when none exists yet for the id.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Set(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps each session as a JSON blob with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.NewSession(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	if session.Pending == nil {
		session.Pending = make(map[string]string)
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is a map-backed SessionStore for tests and single-node
// setups without Redis. Like the Redis store it hands out copies, never the
// stored object itself.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.Session)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return models.NewSession(sessionID), nil
	}
	return cloneSession(session), nil
}

func (s *MemorySessionStore) Set(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func cloneSession(session *models.Session) *models.Session {
	clone := *session
	clone.Messages = append([]models.ChatMessage(nil), session.Messages...)
	clone.Pending = make(map[string]string, len(session.Pending))
	for k, v := range session.Pending {
		clone.Pending[k] = v
	}
	return &clone
}
