package expiringcache

const nilSlot = -1

type slot[K comparable, V any] struct {
	entry      Entry[K, V]
	prev, next int
}

// order is a doubly-linked list of entries threaded through a slab.
// Handles are slab indices. Front is the newest entry, back the oldest.
type order[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int
	head  int
	tail  int
	n     int
}

func newOrder[K comparable, V any]() *order[K, V] {
	return &order[K, V]{head: nilSlot, tail: nilSlot}
}

func (o *order[K, V]) len() int { return o.n }

func (o *order[K, V]) pushFront(e Entry[K, V]) int {
	var i int
	if n := len(o.free); n > 0 {
		i = o.free[n-1]
		o.free = o.free[:n-1]
	} else {
		o.slots = append(o.slots, slot[K, V]{})
		i = len(o.slots) - 1
	}

	o.slots[i] = slot[K, V]{entry: e, prev: nilSlot, next: o.head}
	if o.head != nilSlot {
		o.slots[o.head].prev = i
	} else {
		o.tail = i
	}
	o.head = i
	o.n++
	return i
}

// remove unlinks slot i and returns its entry. The slot is cleared so
// the slab keeps no reference to the removed key or value.
func (o *order[K, V]) remove(i int) Entry[K, V] {
	s := o.slots[i]
	if s.prev != nilSlot {
		o.slots[s.prev].next = s.next
	} else {
		o.head = s.next
	}
	if s.next != nilSlot {
		o.slots[s.next].prev = s.prev
	} else {
		o.tail = s.prev
	}

	o.slots[i] = slot[K, V]{prev: nilSlot, next: nilSlot}
	o.free = append(o.free, i)
	o.n--
	return s.entry
}

func (o *order[K, V]) back() (int, bool) {
	return o.tail, o.tail != nilSlot
}

func (o *order[K, V]) at(i int) Entry[K, V] {
	return o.slots[i].entry
}
