package kv

import (
	"context"
	"sync"
)

var _ Medium = (*Memory)(nil)

// Memory medio en proceso, sin persistencia. Útil en tests y en modo demo.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemory construye un medio vacío.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// Get devuelve el valor de key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

// Set escribe key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

// Delete elimina key si existe.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Update ejecuta fn con el mutex tomado.
func (m *Memory) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.entries[key]
	next, err := fn(cur, ok)
	if err != nil {
		return err
	}
	m.entries[key] = next
	return nil
}

// Close no hace nada.
func (m *Memory) Close() error { return nil }
