package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"assistente_juridico/internal/usecase/interfaces"
)

var ErrObjectNotFound = errors.New("object not found")

// MemoryStore keeps objects in process memory and hands out URLs under baseURL.
// Used when no MinIO endpoint is configured; contents vanish with the process.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

var _ interfaces.IObjectStore = (*MemoryStore)(nil)

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{baseURL: strings.TrimRight(baseURL, "/"), objects: map[string]memoryObject{}}
}

func (s *MemoryStore) Put(_ context.Context, key string, r io.Reader, size int64, contentType string) error {
	var data []byte
	var err error
	if size >= 0 {
		data, err = io.ReadAll(io.LimitReader(r, size))
	} else {
		data, err = io.ReadAll(r)
	}
	if err != nil {
		return fmt.Errorf("read object: %w", err)
	}
	s.mu.Lock()
	s.objects[key] = memoryObject{data: data, contentType: contentType}
	s.mu.Unlock()
	return nil
}

// URL does not require the key to exist: generated documents are addressable
// before anything is written for them.
func (s *MemoryStore) URL(_ context.Context, key string) (string, error) {
	return s.baseURL + "/" + key, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return ErrObjectNotFound
	}
	delete(s.objects, key)
	return nil
}

// Get returns a stored object's bytes.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[key]
	return o.data, ok
}
