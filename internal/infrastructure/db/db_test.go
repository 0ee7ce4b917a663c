package db

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadwatch/report-system/internal/pkg/config"
)

func TestNewMirror_Memory(t *testing.T) {
	for _, backend := range []string{"", "memory"} {
		cfg := &config.Config{MirrorBackend: backend}
		m, closeFn, err := NewMirror(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)
		require.NotNil(t, m)

		require.NoError(t, m.Set(context.Background(), "k", "v"))
		got, err := m.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
		assert.NoError(t, closeFn(context.Background()))
	}
}

func TestNewMirror_UnknownBackend(t *testing.T) {
	cfg := &config.Config{MirrorBackend: "etcd"}
	_, _, err := NewMirror(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "etcd")
}
