package repositories

import (
	"context"
	"encoding/json"
	"sync"
)

// Keys persisted per visitor session.
const (
	KeyCart          = "cartItems"
	KeyWishlist      = "wishlistItems"
	KeyOrderHistory  = "orderHistory"
	KeyLastVisitDate = "lastVisitDate"
	KeyTheme         = "theme"
	KeyAdOrderWizard = "adOrderWizard"
	KeyCheckout      = "checkoutWizard"
)

// StateStore holds JSON values per (session, key). Get reports false when
// the key has never been set.
type StateStore interface {
	Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, sessionID, key string, value interface{}) error
	Delete(ctx context.Context, sessionID, key string) error
}

type MemoryStateStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{data: map[string][]byte{}}
}

func stateKey(sessionID, key string) string {
	return "session:" + sessionID + ":" + key
}

func (s *MemoryStateStore) Get(_ context.Context, sessionID, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[stateKey(sessionID, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *MemoryStateStore) Set(_ context.Context, sessionID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[stateKey(sessionID, key)] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStateStore) Delete(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	delete(s.data, stateKey(sessionID, key))
	s.mu.Unlock()
	return nil
}
