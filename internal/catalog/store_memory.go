// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog

import (
	"fmt"
	"sort"
)

// MemoryStore implements [Repository] over an in-memory, indexed record set.
//
// # Construction
//
// The store is fully built by [NewMemoryStore] and never mutated afterwards,
// so all methods are safe for concurrent use without locking. It is an
// explicitly constructed handle — tests build their own small stores instead
// of sharing process-wide state.
type MemoryStore struct {
	// stamps preserves load order for the linear-scan access path.
	stamps []*Stamp

	// index provides exact composite-identifier lookup.
	index map[StampID]*Stamp

	// groups holds each item group's members, sorted by variant code with
	// the base stamp ("") first.
	groups map[GroupKey][]*Stamp
}

// NewMemoryStore builds the indexed store from a loaded record set.
//
// Every record must carry a unique composite identifier; a duplicate is a
// data defect and fails the build. The store never partially initializes —
// the caller either gets a complete store or an error.
func NewMemoryStore(stamps []*Stamp) (*MemoryStore, error) {
	store := &MemoryStore{
		stamps: stamps,
		index:  make(map[StampID]*Stamp, len(stamps)),
		groups: make(map[GroupKey][]*Stamp),
	}

	for _, stamp := range stamps {
		if _, exists := store.index[stamp.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate stamp identifier %q", stamp.ID)
		}
		store.index[stamp.ID] = stamp

		key := stamp.ID.GroupKey()
		store.groups[key] = append(store.groups[key], stamp)
	}

	// Deterministic variant iteration: the empty (base) variant sorts first.
	for _, group := range store.groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].ID.Variant < group[j].ID.Variant
		})
	}

	return store, nil
}

// All returns every stamp in stable load order.
func (store *MemoryStore) All() []*Stamp {
	return store.stamps
}

// Lookup returns the stamp with the exact composite identifier.
func (store *MemoryStore) Lookup(id StampID) (*Stamp, error) {
	stamp, ok := store.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	return stamp, nil
}

// Siblings returns the item group for (stampType, number), base stamp first.
func (store *MemoryStore) Siblings(stampType, number string) []*Stamp {
	return store.groups[GroupKey{Type: stampType, Number: number}]
}

// Size returns the number of records in the store.
func (store *MemoryStore) Size() int {
	return len(store.stamps)
}
