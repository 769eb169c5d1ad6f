package match

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// locker hands out one single-permit semaphore per match id. Every
// operation on a match runs inside its own critical section, so two
// concurrent shots can never both read "my turn" as true.
type locker struct {
	mu    sync.Mutex
	perID map[string]*semaphore.Weighted
}

func newLocker() *locker {
	return &locker{
		perID: make(map[string]*semaphore.Weighted),
	}
}

func (l *locker) lock(ctx context.Context, id string) (unlock func(), err error) {
	l.mu.Lock()
	sem, ok := l.perID[id]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.perID[id] = sem
	}
	l.mu.Unlock()

	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	return func() { sem.Release(1) }, nil
}
