// Package keylock serializes work per string key.
//
// The webhook handler holds the lock for a player ID across the whole
// read-decide-write cycle, so two utterances from the same player can
// never interleave while players on other keys proceed in parallel.
package keylock

import "sync"

// KeyLock hands out one mutex per key. Entries are reference counted and
// removed once the last holder releases, so the map stays bounded by the
// number of in-flight keys rather than every key ever seen.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New returns an empty KeyLock.
func New() *KeyLock {
	return &KeyLock{locks: make(map[string]*entry)}
}

// Lock acquires the mutex for key, creating it on first use.
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

// Unlock releases the mutex for key. It panics when the key is not held.
func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keylock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
