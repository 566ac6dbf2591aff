package expiringcache

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const (
	slotTable = "slots"
	keyIndex  = "id"
)

// memdb rejects an empty id, so every key is stored behind a prefix.
func recordKey(key string) string { return "k" + key }

type indexRecord struct {
	Key  string
	Slot int
}

// radixIndex keeps string keys in a memdb table, which stores them in an
// immutable radix tree.
type radixIndex struct {
	db  *memdb.MemDB
	log func(level, format string, v ...interface{})
}

func newRadixIndex(log func(level, format string, v ...interface{})) (*radixIndex, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			slotTable: {
				Name: slotTable,
				Indexes: map[string]*memdb.IndexSchema{
					keyIndex: {
						Name:    keyIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &radixIndex{db: db, log: log}, nil
}

func (r *radixIndex) lookup(key string) (int, bool) {
	txn := r.db.Txn(false)
	raw, err := txn.First(slotTable, keyIndex, recordKey(key))
	if err != nil {
		r.log("error", "Failed to look up key %q: %v", key, err)
		return 0, false
	}
	if raw == nil {
		return 0, false
	}
	return raw.(*indexRecord).Slot, true
}

func (r *radixIndex) store(key string, slot int) {
	txn := r.db.Txn(true)
	if err := txn.Insert(slotTable, &indexRecord{Key: recordKey(key), Slot: slot}); err != nil {
		txn.Abort()
		r.log("error", "Failed to index key %q: %v", key, err)
		return
	}
	txn.Commit()
}

func (r *radixIndex) remove(key string) {
	txn := r.db.Txn(true)
	if err := txn.Delete(slotTable, &indexRecord{Key: recordKey(key)}); err != nil {
		txn.Abort()
		if !errors.Is(err, memdb.ErrNotFound) {
			r.log("error", "Failed to unindex key %q: %v", key, err)
		}
		return
	}
	txn.Commit()
}
