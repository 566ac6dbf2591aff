package expiringcache

import (
	"sync"
	"time"

	"github.com/samber/mo"
)

// Synchronized guards a Cache with a mutex held for the whole of each
// operation. Pruning mutates the cache on reads too, so there is no
// read lock.
type Synchronized[K comparable, V any] struct {
	mu    sync.Mutex
	cache *Cache[K, V]
}

func NewSynchronized[K comparable, V any](cache *Cache[K, V]) *Synchronized[K, V] {
	return &Synchronized[K, V]{cache: cache}
}

func (s *Synchronized[K, V]) Get(key K) mo.Option[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

func (s *Synchronized[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Set(key, value)
}

func (s *Synchronized[K, V]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Count()
}

func (s *Synchronized[K, V]) TTL() time.Duration {
	return s.cache.TTL()
}
