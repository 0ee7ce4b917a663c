// Package memory provides the in-memory Mirror. It is the default backend
// and the one tests inject; contents live for the process lifetime only.
package memory

import (
	"context"
	"sync"

	"github.com/roadwatch/report-system/internal/core/ports"
)

type Mirror struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMirror() *Mirror {
	return &Mirror{values: make(map[string]string)}
}

func (m *Mirror) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

func (m *Mirror) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes key; deleting an absent key is not an error.
func (m *Mirror) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
