// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package sorted provides an owned set kept in ascending element
// order. Natural order is sort order, regardless of insertion order.
// A traversal fixes its element roster when it starts.
package sorted // import "github.com/M6AI/holdall/sorted"

import (
	"sync"

	"github.com/ssbc/go-luigi"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/M6AI/holdall"
)

// Set is a sorted set over an ordered element type.
type Set[T constraints.Ordered] struct {
	mu    sync.RWMutex
	items []T
}

var _ holdall.Collection[string] = (*Set[string])(nil)

// New returns an empty set.
func New[T constraints.Ordered]() *Set[T] {
	return &Set[T]{}
}

// From returns a set holding the given items in ascending order,
// duplicates collapsed.
func From[T constraints.Ordered](items ...T) *Set[T] {
	s := New[T]()
	for _, item := range items {
		s.insert(item)
	}
	return s
}

// Insert adds item at its sort position and reports whether the set
// changed.
func (s *Set[T]) Insert(item T) (modified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(item)
}

func (s *Set[T]) insert(item T) bool {
	idx, found := slices.BinarySearch(s.items, item)
	if found {
		return false
	}

	s.items = slices.Insert(s.items, idx, item)
	return true
}

// Remove deletes item and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, found := slices.BinarySearch(s.items, item)
	if !found {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	return true
}

// Clear drops every element.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

func (s *Set[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := slices.BinarySearch(s.items, item)
	return found
}

func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *Set[T]) Iter(specs ...holdall.IterSpec) (luigi.Source, error) {
	// slices.Insert may shift elements in place, so the roster is a
	// copy rather than a shared header
	s.mu.RLock()
	roster := append([]T(nil), s.items...)
	s.mu.RUnlock()

	qry := &setQry[T]{
		roster: roster,
		limit:  -1, //i.e. no limit
	}

	for _, spec := range specs {
		err := spec(qry)
		if err != nil {
			return nil, err
		}
	}

	return qry, nil
}
