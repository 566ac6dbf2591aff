// Package expiringcache provides a key-value cache whose entries expire a
// fixed time after they were last written.
//
// Expired entries are pruned lazily: every Get, Set and Count first drops
// the entries that have outlived the TTL, oldest first. There is no
// background goroutine and no capacity limit.
//
// A Cache is not safe for concurrent use. Wrap it with NewSynchronized
// when several goroutines share one.
package expiringcache

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/samber/mo"
)

type Cache[K comparable, V any] struct {
	ttl   time.Duration
	opts  Options[K, V]
	clock Clock
	index index[K]
	order *order[K, V]
}

// New returns a cache keeping entries for ttl. A zero ttl is allowed and
// makes every entry expire by the next operation.
func New[K comparable, V any](ttl time.Duration, opts Options[K, V]) (*Cache[K, V], error) {
	c, err := newCache(ttl, opts)
	if err != nil {
		return nil, err
	}
	c.index = make(mapIndex[K])
	return c, nil
}

// NewRadix is like New but keeps keys in a memdb radix tree instead of a map.
func NewRadix[V any](ttl time.Duration, opts Options[string, V]) (*Cache[string, V], error) {
	c, err := newCache(ttl, opts)
	if err != nil {
		return nil, err
	}
	idx, err := newRadixIndex(c.log)
	if err != nil {
		return nil, err
	}
	c.index = idx
	return c, nil
}

func newCache[K comparable, V any](ttl time.Duration, opts Options[K, V]) (*Cache[K, V], error) {
	if ttl < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeTTL, ttl)
	}

	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}

	return &Cache[K, V]{
		ttl:   ttl,
		opts:  opts,
		clock: clock,
		order: newOrder[K, V](),
	}, nil
}

func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value stored under key, or None if the key is absent
// or has expired.
func (c *Cache[K, V]) Get(key K) mo.Option[V] {
	c.prune(c.clock.Now())

	slot, ok := c.index.lookup(key)
	if !ok {
		c.log("debug", "Get key: %v (miss)", key)
		return mo.None[V]()
	}

	c.log("debug", "Get key: %v", key)
	return mo.Some(c.order.at(slot).Value())
}

// Set stores value under key. Writing an existing key replaces its entry,
// so the TTL restarts from now.
func (c *Cache[K, V]) Set(key K, value V) {
	now := c.clock.Now()
	c.prune(now)

	if slot, ok := c.index.lookup(key); ok {
		c.order.remove(slot)
		c.index.remove(key)
	}

	slot := c.order.pushFront(newEntry(key, value, now))
	c.index.store(key, slot)

	c.log("debug", "Set key: %v, TTL: %v", key, c.ttl)
}

// Count returns the number of entries that have not expired.
func (c *Cache[K, V]) Count() int {
	c.prune(c.clock.Now())
	return c.order.len()
}

// prune removes expired entries from the back of the order list. The list
// is sorted by age, so it stops at the first entry still alive.
func (c *Cache[K, V]) prune(now time.Time) {
	cutoff := now.Add(-c.ttl)

	removed := 0
	for {
		slot, ok := c.order.back()
		if !ok || !c.order.at(slot).expired(cutoff) {
			break
		}

		e := c.order.remove(slot)
		c.index.remove(e.Key())
		removed++

		if c.opts.ExpireCallback != nil {
			c.opts.ExpireCallback(e.Key(), e.Value())
		}
	}

	if removed > 0 {
		c.log("info", "Pruned %d expired entries", removed)
	}
}

var logLevels = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

// log writes through the standard logger when level is at or above
// Options.LogLevel. An empty or unknown LogLevel keeps the cache silent.
func (c *Cache[K, V]) log(level, format string, v ...interface{}) {
	threshold, ok := logLevels[c.opts.LogLevel]
	if !ok || logLevels[level] < threshold {
		return
	}
	log.Printf("["+strings.ToUpper(level)+"] "+format, v...)
}
