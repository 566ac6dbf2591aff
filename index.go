package expiringcache

// index maps a key to its slot in the order list.
type index[K comparable] interface {
	lookup(key K) (int, bool)
	store(key K, slot int)
	remove(key K)
}

type mapIndex[K comparable] map[K]int

func (m mapIndex[K]) lookup(key K) (int, bool) {
	i, ok := m[key]
	return i, ok
}

func (m mapIndex[K]) store(key K, slot int) { m[key] = slot }

func (m mapIndex[K]) remove(key K) { delete(m, key) }
