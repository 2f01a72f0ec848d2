package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-task-uploader/internal/model"
)

// memoryCapacity bounds the number of live sessions held in process.
const memoryCapacity = 10000

// MemoryStore keeps sessions in an expiring in-process LRU.
type MemoryStore struct {
	cache *expirable.LRU[string, model.Session]
	ttl   time.Duration
}

// NewMemory creates an in-process session store with the given TTL.
func NewMemory(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		cache: expirable.NewLRU[string, model.Session](memoryCapacity, nil, ttl),
		ttl:   ttl,
	}
}

// Create mints a new session for the username.
func (s *MemoryStore) Create(ctx context.Context, username, languageKey string) (model.Session, error) {
	sess := newSession(username, languageKey, s.ttl)
	s.cache.Add(sess.ID, sess)
	return sess, nil
}

// Get returns the session for the given id.
func (s *MemoryStore) Get(ctx context.Context, id string) (model.Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok || sess.Expired() {
		return model.Session{}, ErrNotFound
	}
	return sess, nil
}

// Save persists an updated session. Unknown sessions are rejected.
func (s *MemoryStore) Save(ctx context.Context, sess model.Session) error {
	if _, ok := s.cache.Get(sess.ID); !ok {
		return ErrNotFound
	}
	s.cache.Add(sess.ID, sess)
	return nil
}

// Delete removes the session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.cache.Remove(id)
	return nil
}

var _ IStore = (*MemoryStore)(nil)
