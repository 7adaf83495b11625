// Package persist saves ledger state to a storage.Store and loads it back.
//
// Writes are coalesced: Commit only records the latest state and schedules a
// trailing-edge write once the commit window has passed without newer commits.
package persist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/snapshot"
	"github.com/mmynk/splitledger/internal/storage"
)

// DefaultWindow is the default commit window.
const DefaultWindow = 500 * time.Millisecond

// writeTimeout bounds a single background write.
const writeTimeout = 5 * time.Second

// Committer writes ledger snapshots to a store with trailing-edge debouncing.
type Committer struct {
	store   storage.Store
	key     string
	window  time.Duration
	metrics *Metrics

	writeMu sync.Mutex // serializes writes so they land in commit order

	mu      sync.Mutex
	pending []byte
	timer   *time.Timer
	closed  bool
}

// Option configures a Committer.
type Option func(*Committer)

// WithWindow sets the commit window. Zero writes synchronously on every commit.
func WithWindow(d time.Duration) Option {
	return func(c *Committer) {
		c.window = d
	}
}

// WithMetrics attaches counters to the committer.
func WithMetrics(m *Metrics) Option {
	return func(c *Committer) {
		c.metrics = m
	}
}

// NewCommitter creates a committer that stores snapshots under key.
func NewCommitter(store storage.Store, key string, opts ...Option) *Committer {
	c := &Committer{
		store:  store,
		key:    key,
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}
	return c
}

// Commit records state as the latest snapshot and schedules a write.
// Write failures are logged; they never reach the caller.
func (c *Committer) Commit(state ledger.State) {
	data, err := snapshot.Encode(state)
	if err != nil {
		slog.Error("Commit failed to encode ledger", "error", err)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		slog.Warn("Commit after close ignored", "key", c.key)
		return
	}
	c.metrics.Commits.Inc()
	c.pending = data

	if c.window <= 0 {
		c.mu.Unlock()
		c.flushInBackground()
		return
	}
	if c.timer == nil {
		c.timer = time.AfterFunc(c.window, c.flushInBackground)
	} else {
		c.timer.Reset(c.window)
	}
	c.mu.Unlock()
}

// Flush writes any pending snapshot immediately.
func (c *Committer) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()
	return c.write(ctx)
}

// Close flushes pending state and rejects later commits.
func (c *Committer) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.Flush(ctx)
}

func (c *Committer) flushInBackground() {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := c.write(ctx); err != nil {
		slog.Error("Background ledger write failed", "key", c.key, "error", err)
	}
}

func (c *Committer) write(ctx context.Context) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	data := c.pending
	c.pending = nil
	c.mu.Unlock()

	if data == nil {
		return nil
	}

	if err := c.store.Put(ctx, c.key, data); err != nil {
		c.metrics.WriteErrors.Inc()
		return fmt.Errorf("failed to write ledger snapshot: %w", err)
	}
	c.metrics.Writes.Inc()
	slog.Debug("Ledger snapshot written", "key", c.key, "bytes", len(data))
	return nil
}

// Load reads the saved ledger under key.
// A missing key yields an empty ledger. Corrupted data is logged, deleted and
// replaced by an empty ledger so the application can start fresh.
func Load(ctx context.Context, store storage.Store, key string) (ledger.State, error) {
	data, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return ledger.Clear(), nil
	}
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to read saved ledger: %w", err)
	}

	state, err := snapshot.Decode(data)
	var corrupted *snapshot.CorruptedError
	if errors.As(err, &corrupted) {
		slog.Warn("Saved ledger is corrupted, starting fresh", "key", key, "problems", corrupted.Details)
		if err := store.Delete(ctx, key); err != nil {
			return ledger.State{}, fmt.Errorf("failed to discard corrupted ledger: %w", err)
		}
		return ledger.Clear(), nil
	}
	if err != nil {
		return ledger.State{}, err
	}
	return state, nil
}
