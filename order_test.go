package expiringcache

import (
	"testing"
	"time"
)

func keysFrontToBack(o *order[string, int]) []string {
	var keys []string
	for i := o.head; i != nilSlot; i = o.slots[i].next {
		keys = append(keys, o.slots[i].entry.Key())
	}
	return keys
}

func TestOrderLinks(t *testing.T) {
	o := newOrder[string, int]()
	now := time.Now()

	if _, ok := o.back(); ok {
		t.Fatalf("Expected empty order to have no back")
	}

	a := o.pushFront(newEntry("a", 1, now))
	b := o.pushFront(newEntry("b", 2, now))
	c := o.pushFront(newEntry("c", 3, now))

	if got := keysFrontToBack(o); len(got) != 3 || got[0] != "c" || got[2] != "a" {
		t.Fatalf("Expected [c b a], got %v", got)
	}
	if back, _ := o.back(); back != a {
		t.Errorf("Expected back to be slot %d, got %d", a, back)
	}

	if e := o.remove(b); e.Key() != "b" || e.Value() != 2 {
		t.Errorf("Removed wrong entry: %v", e)
	}
	if got := keysFrontToBack(o); len(got) != 2 || got[0] != "c" || got[1] != "a" {
		t.Errorf("Expected [c a], got %v", got)
	}

	o.remove(a)
	if back, _ := o.back(); back != c {
		t.Errorf("Expected back to be slot %d, got %d", c, back)
	}

	o.remove(c)
	if o.len() != 0 || o.head != nilSlot || o.tail != nilSlot {
		t.Errorf("Expected empty order, got len %d head %d tail %d", o.len(), o.head, o.tail)
	}

	if d := o.pushFront(newEntry("d", 4, now)); d != c {
		t.Errorf("Expected freed slot %d to be reused, got %d", c, d)
	}
}

func TestOrderRemoveClearsSlot(t *testing.T) {
	o := newOrder[string, *int]()
	v := 1
	i := o.pushFront(newEntry("k", &v, time.Now()))
	o.remove(i)

	if o.slots[i].entry.Value() != nil || o.slots[i].entry.Key() != "" {
		t.Errorf("Expected slot %d to be cleared, got %+v", i, o.slots[i].entry)
	}
}
