package workcard

import (
	"sync"

	"github.com/google/uuid"
)

// workerLocks serialises transitions per worker. Entries are dropped when
// the last holder unlocks.
type workerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*workerLock
}

type workerLock struct {
	mu   sync.Mutex
	refs int
}

func newWorkerLocks() *workerLocks {
	return &workerLocks{locks: make(map[uuid.UUID]*workerLock)}
}

// lock blocks until id is free and returns the matching unlock.
func (l *workerLocks) lock(id uuid.UUID) func() {
	l.mu.Lock()
	wl, ok := l.locks[id]
	if !ok {
		wl = &workerLock{}
		l.locks[id] = wl
	}
	wl.refs++
	l.mu.Unlock()

	wl.mu.Lock()

	return func() {
		wl.mu.Unlock()

		l.mu.Lock()
		wl.refs--
		if wl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// size reports the number of tracked workers.
func (l *workerLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
