package storage

import (
	"context"
	"sync"
)

type memoryProvider struct {
	mu      sync.Mutex
	clients map[string]*Memory
}

var _ Provider = (*memoryProvider)(nil)

func NewMemoryProvider() Provider {
	return &memoryProvider{clients: make(map[string]*Memory)}
}

func (p *memoryProvider) ForClient(clientID string) LocalStorage {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.clients[clientID]
	if !ok {
		m = NewMemory()
		p.clients[clientID] = m
	}
	return m
}

// Memory is a LocalStorage kept in process memory.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ LocalStorage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}
