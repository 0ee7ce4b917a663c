package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadwatch/report-system/internal/core/ports"
)

func TestMirror_SetGetRoundTrip(t *testing.T) {
	m := NewMirror()

	require.NoError(t, m.Set(context.Background(), "username", "maria"))
	got, err := m.Get(context.Background(), "username")
	require.NoError(t, err)
	assert.Equal(t, "maria", got)
}

func TestMirror_GetMissingKey(t *testing.T) {
	m := NewMirror()

	_, err := m.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestMirror_SetOverwrites(t *testing.T) {
	m := NewMirror()

	require.NoError(t, m.Set(context.Background(), "reports", "[]"))
	require.NoError(t, m.Set(context.Background(), "reports", `[{"id":1}]`))

	got, err := m.Get(context.Background(), "reports")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, got)
}

func TestMirror_Delete(t *testing.T) {
	m := NewMirror()

	require.NoError(t, m.Set(context.Background(), "isLoggedIn", "true"))
	require.NoError(t, m.Delete(context.Background(), "isLoggedIn"))

	_, err := m.Get(context.Background(), "isLoggedIn")
	require.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestMirror_DeleteAbsentKey(t *testing.T) {
	m := NewMirror()
	assert.NoError(t, m.Delete(context.Background(), "never-set"))
}
