package services

import (
	"sync"
	"testing"
	"time"

	"github.com/xvierd/mindminute/internal/adapters/storage"
	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/domain"
	"github.com/xvierd/mindminute/internal/ports"
	"github.com/xvierd/mindminute/internal/routine"
)

// fakeClock hands out tickers whose channel is always ready, so timed
// exercises run without waiting.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers int
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *fakeClock) NewTicker(time.Duration) ports.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickers++
	ch := make(chan time.Time)
	close(ch)
	return &fakeTicker{ch: ch}
}

type fakeTicker struct {
	ch      chan time.Time
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }
func (t *fakeTicker) Stop()               { t.stopped = true }

type fakeNotifier struct {
	mu    sync.Mutex
	kinds []domain.ExerciseKind
}

func (n *fakeNotifier) NotifyExerciseComplete(kind domain.ExerciseKind) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
	return nil
}

func (n *fakeNotifier) Kinds() []domain.ExerciseKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.ExerciseKind(nil), n.kinds...)
}

func setupTestStorage(t *testing.T) ports.Storage {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testCatalog() ports.ExerciseCatalog {
	return routine.NewCatalog(config.DefaultConfig())
}

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
