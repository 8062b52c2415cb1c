package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Dirk1989/Ideal/internal/domain"
)

// MemoryBackend keeps collection documents in process memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[domain.Collection][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[domain.Collection][]byte)}
}

// Load returns the last saved document of kind.
func (b *MemoryBackend) Load(_ context.Context, kind domain.Collection) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	doc, ok := b.docs[kind]
	if !ok {
		return nil, ErrNotStored
	}
	return slices.Clone(doc), nil
}

// Save replaces the document of kind.
func (b *MemoryBackend) Save(_ context.Context, kind domain.Collection, doc []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.docs[kind] = slices.Clone(doc)
	return nil
}

// Close implements Backend.
func (b *MemoryBackend) Close() error {
	return nil
}
