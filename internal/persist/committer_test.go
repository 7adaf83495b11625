package persist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/snapshot"
	"github.com/mmynk/splitledger/internal/storage"
)

// memStore is an in-memory storage.Store that counts writes.
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	puts    int
	deletes int
	putErr  error
	getErr  error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}
	return v, nil
}

func (m *memStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) putCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

func stateWith(names ...string) ledger.State {
	s := ledger.State{}
	for i, name := range names {
		s.Participants = append(s.Participants, models.Participant{ID: fmt.Sprintf("p%d", i), Name: name})
	}
	return s
}

func TestCommitter_CoalescesWithinWindow(t *testing.T) {
	store := newMemStore()
	metrics := NewMetrics(prometheus.NewRegistry())
	c := NewCommitter(store, "ledger", WithWindow(time.Hour), WithMetrics(metrics))

	c.Commit(stateWith("Alice"))
	c.Commit(stateWith("Alice", "Bob"))
	c.Commit(stateWith("Alice", "Bob", "Charlie"))
	assert.Equal(t, 0, store.putCount(), "nothing should be written before the window ends")

	require.NoError(t, c.Flush(context.Background()))
	assert.Equal(t, 1, store.putCount())

	saved, err := snapshot.Decode(store.data["ledger"])
	require.NoError(t, err)
	assert.Len(t, saved.Participants, 3)

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Commits))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Writes))

	// Nothing pending: a second flush writes nothing.
	require.NoError(t, c.Flush(context.Background()))
	assert.Equal(t, 1, store.putCount())
}

func TestCommitter_WritesAfterWindow(t *testing.T) {
	store := newMemStore()
	c := NewCommitter(store, "ledger", WithWindow(10*time.Millisecond))

	c.Commit(stateWith("Alice"))

	assert.Eventually(t, func() bool { return store.putCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestCommitter_ZeroWindowWritesImmediately(t *testing.T) {
	store := newMemStore()
	c := NewCommitter(store, "ledger", WithWindow(0))

	c.Commit(stateWith("Alice"))
	c.Commit(stateWith("Alice", "Bob"))

	assert.Equal(t, 2, store.putCount())
}

func TestCommitter_WriteErrorIsReportedByFlush(t *testing.T) {
	store := newMemStore()
	store.putErr = errors.New("disk full")
	metrics := NewMetrics(nil)
	c := NewCommitter(store, "ledger", WithWindow(time.Hour), WithMetrics(metrics))

	c.Commit(stateWith("Alice"))
	err := c.Flush(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.putErr)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WriteErrors))
}

func TestCommitter_Close(t *testing.T) {
	store := newMemStore()
	c := NewCommitter(store, "ledger", WithWindow(time.Hour))

	c.Commit(stateWith("Alice"))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, store.putCount(), "close should flush pending state")

	c.Commit(stateWith("Alice", "Bob"))
	require.NoError(t, c.Flush(context.Background()))
	assert.Equal(t, 1, store.putCount(), "commits after close are ignored")
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key gives empty ledger", func(t *testing.T) {
		state, err := Load(ctx, newMemStore(), "ledger")
		require.NoError(t, err)
		assert.Empty(t, state.Participants)
	})

	t.Run("saved ledger", func(t *testing.T) {
		store := newMemStore()
		data, err := snapshot.Encode(stateWith("Alice", "Bob"))
		require.NoError(t, err)
		store.data["ledger"] = data

		state, err := Load(ctx, store, "ledger")
		require.NoError(t, err)
		assert.Len(t, state.Participants, 2)
	})

	t.Run("corrupted ledger is discarded", func(t *testing.T) {
		store := newMemStore()
		store.data["ledger"] = []byte(`{"participants": "nope"}`)

		state, err := Load(ctx, store, "ledger")
		require.NoError(t, err)
		assert.Empty(t, state.Participants)
		assert.Equal(t, 1, store.deletes)
		assert.NotContains(t, store.data, "ledger")
	})

	t.Run("read failure", func(t *testing.T) {
		store := newMemStore()
		store.getErr = errors.New("permission denied")

		_, err := Load(ctx, store, "ledger")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.getErr)
	})
}
