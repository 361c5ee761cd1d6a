package utils

import "sync"

// UserLocker serializes read-check-write sequences per user ID. The backing
// store offers no compare-and-swap, so two in-flight requests for the same
// user must not interleave between the balance read and the write.
type UserLocker struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewUserLocker creates an empty locker
func NewUserLocker() *UserLocker {
	return &UserLocker{locks: make(map[string]*userLock)}
}

// Lock acquires the per-user lock and returns its release function
func (l *UserLocker) Lock(userID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &userLock{}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}
