package service

import (
	"context"

	"github.com/roadwatch/report-system/internal/core/domain"
	"github.com/roadwatch/report-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub mirror with per-key failure injection
// ---------------------------------------------------------------------------

type stubMirror struct {
	values map[string]string
	setErr map[string]error // if set for a key, Set returns this error
	delErr error            // if set, Delete returns this error
}

func newStubMirror() *stubMirror {
	return &stubMirror{
		values: make(map[string]string),
		setErr: make(map[string]error),
	}
}

func (m *stubMirror) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

func (m *stubMirror) Set(_ context.Context, key, value string) error {
	if err := m.setErr[key]; err != nil {
		return err
	}
	m.values[key] = value
	return nil
}

func (m *stubMirror) Delete(_ context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.values, key)
	return nil
}

// stubSink records notification messages fanned out by other stores.
type stubSink struct {
	messages []string
}

func (s *stubSink) AddNotification(_ context.Context, message string) domain.Notification {
	s.messages = append(s.messages, message)
	return domain.Notification{Message: message}
}
