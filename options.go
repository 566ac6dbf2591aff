package expiringcache

// ExpireCallback is called for each entry that pruning removes from the cache.
type ExpireCallback[K comparable, V any] func(key K, value V)

type Options[K comparable, V any] struct {
	LogLevel       string // "debug", "info", "warn", "error"
	Clock          Clock  // defaults to SystemClock
	ExpireCallback ExpireCallback[K, V]
}
