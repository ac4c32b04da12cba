// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog

import "errors"

// ErrNotFound is returned when a well-formed identifier matches no record.
var ErrNotFound = errors.New("catalog: stamp not found")

// Repository defines the data access contract for the stamp catalogue.
//
// The catalogue is read-only: implementations are built once before serving
// begins and must be safe for concurrent readers without locking.
type Repository interface {
	// All returns every stamp in stable load order. Callers must not
	// mutate the returned slice or the records it points to.
	All() []*Stamp

	// Lookup returns the stamp with the exact composite identifier,
	// or [ErrNotFound].
	Lookup(id StampID) (*Stamp, error)

	// Siblings returns every stamp sharing the given type and catalogue
	// number, ordered by variant code with the base stamp ("") first.
	// The result is empty when no such group exists.
	Siblings(stampType, number string) []*Stamp

	// Size returns the number of records in the store.
	Size() int
}
