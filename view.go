// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package holdall

import (
	"github.com/ssbc/go-luigi"
)

// View is a read-only facade over a caller-owned Collection. It holds
// the collection itself, not a copy, so every query observes the
// owner's current state. Handing out a View instead of the concrete
// type keeps mutating methods out of reach.
type View[T comparable] struct {
	coll Collection[T]
}

var _ Collection[int] = View[int]{}

// NewView returns a view over coll. The collection stays owned by the
// caller; the view never releases or mutates it.
func NewView[T comparable](coll Collection[T]) View[T] {
	return View[T]{coll: coll}
}

func (v View[T]) Contains(item T) bool {
	return v.coll.Contains(item)
}

func (v View[T]) Len() int {
	return v.coll.Len()
}

func (v View[T]) Iter(specs ...IterSpec) (luigi.Source, error) {
	return v.coll.Iter(specs...)
}
