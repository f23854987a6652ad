package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Rooms use it so that verbs and
// world ticks touching the same room run one at a time.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Do runs fn while holding the lock for key.
func (lm *LockManager) Do(key string, fn func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	fn()
}
