package storage

import (
	"context"
	"fmt"
	"sync"
)

// MockImageStore keeps uploads in memory (primarily for testing).
type MockImageStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	serial  int
}

func NewMockImageStore() *MockImageStore {
	return &MockImageStore{objects: map[string][]byte{}}
}

func (m *MockImageStore) Upload(ctx context.Context, serviceID uint, body []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serial++
	key := fmt.Sprintf("services/%d/%d.webp", serviceID, m.serial)
	m.objects[key] = body
	return key, nil
}

func (m *MockImageStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *MockImageStore) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[key]
	return b, ok
}
