// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package sliceview adapts a caller-owned slice into an ordered
// holdall.Collection. The view borrows the slice through a pointer and
// copies nothing: length, membership and running traversals all read
// the slice as it currently is, so appends, truncations and element
// stores made by the owner stay visible.
package sliceview // import "github.com/M6AI/holdall/sliceview"

import (
	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

// View is an ordered collection over a caller-owned *[]T. Natural
// order is slice order; duplicate elements count and traverse as
// separate entries.
type View[T comparable] struct {
	items *[]T
}

var _ holdall.Collection[string] = View[string]{}

// New returns a view over items. The slice stays owned by the caller;
// the view never writes through the pointer.
func New[T comparable](items *[]T) View[T] {
	return View[T]{items: items}
}

func (v View[T]) Contains(item T) bool {
	for _, cur := range *v.items {
		if cur == item {
			return true
		}
	}

	return false
}

func (v View[T]) Len() int {
	return len(*v.items)
}

func (v View[T]) Iter(specs ...holdall.IterSpec) (luigi.Source, error) {
	qry := &sliceQry[T]{
		items: v.items,
		limit: -1, //i.e. no limit
	}

	for _, spec := range specs {
		err := spec(qry)
		if err != nil {
			return nil, err
		}
	}

	return qry, nil
}
