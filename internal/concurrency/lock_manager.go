package concurrency

import (
	"sync"

	"github.com/rethesda/soulsy/internal/domain"
)

// LockManager hands out one mutex per actor
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given actor
func (lm *LockManager) GetLock(actor domain.ActorID) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(actor, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the actor's mutex
func (lm *LockManager) WithLock(actor domain.ActorID, fn func()) {
	lock := lm.GetLock(actor)
	lock.Lock()
	defer lock.Unlock()
	fn()
}
