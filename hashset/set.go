// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package hashset provides an owned, unordered, map-backed set. Reads
// and writes are safe for concurrent use; a traversal fixes its
// element roster when it starts.
package hashset // import "github.com/M6AI/holdall/hashset"

import (
	"sync"

	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

// Set is an unordered set of comparable items.
type Set[T comparable] struct {
	mu sync.RWMutex
	m  map[T]struct{}
}

var _ holdall.Collection[int] = (*Set[int])(nil)

// New returns an empty set.
func New[T comparable]() *Set[T] {
	return &Set[T]{
		m: make(map[T]struct{}),
	}
}

// From returns a set holding the given items, duplicates collapsed.
func From[T comparable](items ...T) *Set[T] {
	s := New[T]()
	for _, item := range items {
		s.m[item] = struct{}{}
	}
	return s
}

// Insert adds item and reports whether the set changed.
func (s *Set[T]) Insert(item T) (modified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

// Remove deletes item and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.m[item]; !found {
		return false
	}

	delete(s.m, item)
	return true
}

// Clear drops every element.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m = make(map[T]struct{})
}

func (s *Set[T]) Contains(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.m[item]
	return ok
}

func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.m)
}

func (s *Set[T]) Iter(specs ...holdall.IterSpec) (luigi.Source, error) {
	s.mu.RLock()
	roster := make([]T, 0, len(s.m))
	for item := range s.m {
		roster = append(roster, item)
	}
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
