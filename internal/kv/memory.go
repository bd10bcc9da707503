package kv

import (
	"context"
	"sync"
)

type Memory struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (s *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *Memory) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	s.entries[key] = copied
	return nil
}

func (s *Memory) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
