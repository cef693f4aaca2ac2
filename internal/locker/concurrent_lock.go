// Package locker serializes work keyed by an arbitrary resource name.
// The HTTP surface uses it to hand out one mutex per combat seed, so
// two clients racing to simulate and persist the same seed cannot
// interleave their archive writes.
package locker

import (
	"fmt"
	"sync"

	"combatsim/pkg/logger"
)

// entry is one live resource lock plus the number of callers currently
// holding or waiting on it. The entry is dropped once that count falls
// back to zero, so the pool does not grow with every seed ever
// simulated.
type entry struct {
	refs int
	mu   sync.Mutex
}

// ConcurrentLocker :
// A pool of named locks, created on demand and reclaimed when idle.
// The zero value is not usable; build one through NewConcurrentLocker.
type ConcurrentLocker struct {
	log   logger.Logger
	lock  sync.Mutex
	locks map[string]*entry
}

// NewConcurrentLocker builds an empty pool.
func NewConcurrentLocker(log logger.Logger) *ConcurrentLocker {
	return &ConcurrentLocker{
		log:   log,
		locks: make(map[string]*entry),
	}
}

// With runs fn while holding the lock for the named resource. Callers
// naming distinct resources proceed concurrently; callers naming the
// same one serialize, in no guaranteed order.
func (cl *ConcurrentLocker) With(resource string, fn func()) {
	e := cl.acquire(resource)
	e.mu.Lock()

	defer func() {
		e.mu.Unlock()
		cl.release(resource, e)
	}()

	fn()
}

func (cl *ConcurrentLocker) acquire(resource string) *entry {
	cl.lock.Lock()
	defer cl.lock.Unlock()

	e, ok := cl.locks[resource]
	if !ok {
		e = &entry{}
		cl.locks[resource] = e
	}
	e.refs++

	return e
}

func (cl *ConcurrentLocker) release(resource string, e *entry) {
	cl.lock.Lock()
	defer cl.lock.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(cl.locks, resource)
		cl.log.Trace(logger.Verbose, "locker", fmt.Sprintf("reclaimed idle lock for %s", resource))
	}
}
