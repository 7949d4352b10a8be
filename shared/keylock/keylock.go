package keylock

import (
	"strings"
	"sync"
)

// KeyLock serializes critical sections per string key. It backs the
// check-then-insert sequence for booking creation so that two concurrent
// requests for the same room and date cannot both pass the conflict check.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyLock {
	return &KeyLock{
		locks: map[string]*entry{},
	}
}

// Lock acquires the mutex for the given key, creating it on first use.
func (k *KeyLock) Lock(key string) {
	k.mu.Lock()

	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}

	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for the given key. Entries with no waiters are
// removed so that the table does not grow with the key space.
func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()

	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()

		return
	}

	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}

	k.mu.Unlock()

	e.mu.Unlock()
}

// Key joins the lock key parts with a stable separator.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}
