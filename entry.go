package expiringcache

import "time"

// Entry is a key/value pair stamped with the time it was written.
// Entries are never modified; an overwrite creates a new one.
type Entry[K comparable, V any] struct {
	key       K
	value     V
	createdAt time.Time
}

func newEntry[K comparable, V any](key K, value V, now time.Time) Entry[K, V] {
	return Entry[K, V]{key: key, value: value, createdAt: now}
}

func (e Entry[K, V]) Key() K               { return e.key }
func (e Entry[K, V]) Value() V             { return e.value }
func (e Entry[K, V]) CreatedAt() time.Time { return e.createdAt }

func (e Entry[K, V]) expired(cutoff time.Time) bool {
	return !e.createdAt.After(cutoff)
}
