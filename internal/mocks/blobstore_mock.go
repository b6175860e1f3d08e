package mocks

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrWriteFailed is returned by a MockedBlobStore with failing writes.
var ErrWriteFailed = errors.New("blob write failed")

func NewMockedBlobStore() *MockedBlobStore {
	return &MockedBlobStore{
		blobs: make(map[string][]byte),
	}
}

// MockedBlobStore is an in-memory BlobStore. Writes can be toggled to
// fail to exercise the best-effort durability path.
type MockedBlobStore struct {
	mu         sync.Mutex
	blobs      map[string][]byte
	failWrites bool
}

func (m *MockedBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}

	copied := make([]byte, len(value))
	copy(copied, value)

	return copied, nil
}

func (m *MockedBlobStore) Set(
	_ context.Context,
	key string,
	value []byte,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrites {
		return ErrWriteFailed
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	m.blobs[key] = copied

	return nil
}

// Seed stores a blob directly, bypassing the failure toggle.
func (m *MockedBlobStore) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = value
}

func (m *MockedBlobStore) SetFailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failWrites = fail
}

// FixedClock returns a clock stuck at the given instant so tests can
// pin "today".
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}
