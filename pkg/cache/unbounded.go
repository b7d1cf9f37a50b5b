package cache

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Unbounded is a Store that never evicts.
//
// Entries are kept in write order so that a later migration into an LRU store
// replays them oldest first. Reads never change that order.
type Unbounded[K comparable, V any] struct {
	mu     sync.RWMutex
	items  map[K]*list.Element
	writes *list.List // front = oldest write
}

// NewUnbounded creates an empty unbounded store.
func NewUnbounded[K comparable, V any]() *Unbounded[K, V] {
	return &Unbounded[K, V]{
		items:  make(map[K]*list.Element),
		writes: list.New(),
	}
}

// Get returns the value stored under key. It never reorders entries.
func (u *Unbounded[K, V]) Get(key K) (V, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if elem, ok := u.items[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Put adds or replaces a value. A replaced key moves to the newest write position.
func (u *Unbounded[K, V]) Put(key K, value V) (V, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if elem, ok := u.items[key]; ok {
		u.writes.MoveToBack(elem)
		e := elem.Value.(*entry[K, V])
		old := e.value
		e.value = value
		return old, true
	}

	u.items[key] = u.writes.PushBack(&entry[K, V]{key: key, value: value})

	var zero V
	return zero, false
}

// Remove deletes key and returns its value.
func (u *Unbounded[K, V]) Remove(key K) (V, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	elem, ok := u.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	u.writes.Remove(elem)
	delete(u.items, key)
	return elem.Value.(*entry[K, V]).value, true
}

// Keys returns a snapshot ordered from the oldest to the newest write.
func (u *Unbounded[K, V]) Keys() []K {
	u.mu.RLock()
	defer u.mu.RUnlock()

	keys := make([]K, 0, u.writes.Len())
	for elem := u.writes.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

// Len returns the number of stored entries.
func (u *Unbounded[K, V]) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.writes.Len()
}

// Clear removes all entries.
func (u *Unbounded[K, V]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.items = make(map[K]*list.Element)
	u.writes.Init()
}

// Range walks entries from the oldest to the newest write.
// fn runs under a read lock and must not write to the store.
func (u *Unbounded[K, V]) Range(fn func(key K, value V) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for elem := u.writes.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[K, V])
		if !fn(e.key, e.value) {
			return
		}
	}
}

var _ Store[string, any] = (*Unbounded[string, any])(nil)
