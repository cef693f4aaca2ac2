package routes

import (
	"combatsim/internal/batch"
	"combatsim/internal/locker"
	"combatsim/pkg/logger"
)

// seedLocker serializes concurrent access to a given seed using the
// per-resource lock pool from internal/locker. It prevents two clients
// from racing to simulate and persist an outcome for the same seed at
// once.
type seedLocker struct {
	pool *locker.ConcurrentLocker
}

func newSeedLocker(log logger.Logger) *seedLocker {
	return &seedLocker{pool: locker.NewConcurrentLocker(log)}
}

// withLock runs `fn` while holding the lock for the given seed and
// returns its result.
func (s *seedLocker) withLock(seed string, fn func() []batch.Result) []batch.Result {
	var results []batch.Result
	s.pool.With(seed, func() {
		results = fn()
	})
	return results
}
