package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockcore "github.com/GHzOliveira/neurocooperacao-backend/mocks/port/core"
)

func newTestRegistry() *Registry {
	return NewRegistry(mockcore.NewMockLogger())
}

func TestRegistryCreate(t *testing.T) {
	t.Run("Creates a session once", func(t *testing.T) {
		r := newTestRegistry()

		require.NoError(t, r.Create("g1"))
		assert.True(t, r.Exists("g1"))
	})

	t.Run("A second session for the same group is rejected", func(t *testing.T) {
		r := newTestRegistry()
		require.NoError(t, r.Create("g1"))

		assert.ErrorIs(t, r.Create("g1"), ErrSessionExists)
	})
}

func TestRegistryJoin(t *testing.T) {
	t.Run("Joining without a session registers nothing", func(t *testing.T) {
		r := newTestRegistry()
		client := &Client{ID: "c1"}

		_, err := r.Join("g1", client)

		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.False(t, r.Exists("g1"))
	})

	t.Run("Joiners receive the stored message for replay", func(t *testing.T) {
		r := newTestRegistry()
		require.NoError(t, r.Create("g1"))
		require.NoError(t, r.StoreMessage("g1", "bem-vindos"))

		stored, err := r.Join("g1", &Client{ID: "c1"})

		require.NoError(t, err)
		assert.Equal(t, "bem-vindos", stored)
	})

	t.Run("No stored message yields an empty replay", func(t *testing.T) {
		r := newTestRegistry()
		require.NoError(t, r.Create("g1"))

		stored, err := r.Join("g1", &Client{ID: "c1"})

		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}

func TestRegistryStoreMessage(t *testing.T) {
	t.Run("Keeps only the latest message", func(t *testing.T) {
		r := newTestRegistry()
		require.NoError(t, r.Create("g1"))
		require.NoError(t, r.StoreMessage("g1", "first"))
		require.NoError(t, r.StoreMessage("g1", "second"))

		stored, err := r.Join("g1", &Client{ID: "c1"})

		require.NoError(t, err)
		assert.Equal(t, "second", stored)
	})

	t.Run("Storing without a session fails", func(t *testing.T) {
		r := newTestRegistry()
		assert.ErrorIs(t, r.StoreMessage("g1", "msg"), ErrSessionNotFound)
	})
}

func TestRegistryEnd(t *testing.T) {
	t.Run("Removes the session and returns its clients", func(t *testing.T) {
		r := newTestRegistry()
		require.NoError(t, r.Create("g1"))
		c1 := &Client{ID: "c1"}
		c2 := &Client{ID: "c2"}
		_, err := r.Join("g1", c1)
		require.NoError(t, err)
		_, err = r.Join("g1", c2)
		require.NoError(t, err)

		clients, err := r.End("g1")

		require.NoError(t, err)
		assert.Len(t, clients, 2)
		assert.False(t, r.Exists("g1"))
	})

	t.Run("Ending a missing session fails", func(t *testing.T) {
		r := newTestRegistry()
		_, err := r.End("g1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("The group can be recreated after ending", func(t *testing.T) {
		r := newTestRegistry()
		require.NoError(t, r.Create("g1"))
		_, err := r.End("g1")
		require.NoError(t, err)

		assert.NoError(t, r.Create("g1"))
	})
}

func TestRegistryRemoveClient(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Create("g1"))
	require.NoError(t, r.Create("g2"))
	client := &Client{ID: "c1"}
	_, err := r.Join("g1", client)
	require.NoError(t, err)
	_, err = r.Join("g2", client)
	require.NoError(t, err)

	r.RemoveClient(client)

	clients, err := r.End("g1")
	require.NoError(t, err)
	assert.Empty(t, clients)
	clients, err = r.End("g2")
	require.NoError(t, err)
	assert.Empty(t, clients)
}
