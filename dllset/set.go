// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package dllset provides an owned set that remembers insertion order,
// backed by a doubly linked list with a map index. Natural order is
// first-insertion order; traversals walk the live list, so elements
// appended behind a running cursor are still reached. A traversal that
// was started before a Remove may observe the removed element once.
package dllset // import "github.com/M6AI/holdall/dllset"

import (
	"sync"

	"github.com/denismitr/dll"
	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

// Set is an insertion-ordered set of comparable items.
type Set[T comparable] struct {
	mu   sync.RWMutex
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ holdall.Collection[int] = (*Set[int])(nil)

// New returns an empty set.
func New[T comparable]() *Set[T] {
	return &Set[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

// From returns a set holding the given items in first-insertion order,
// duplicates collapsed.
func From[T comparable](items ...T) *Set[T] {
	s := New[T]()
	for _, item := range items {
		s.insert(item)
	}
	return s
}

// Insert appends item unless it is already held and reports whether
// the set changed.
func (s *Set[T]) Insert(item T) (modified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(item)
}

func (s *Set[T]) insert(item T) bool {
	if _, found := s.m[item]; found {
		return false
	}

	el := dll.NewElement(item)
	s.m[item] = el
	s.list.PushTail(el)
	return true
}

// Remove deletes item and reports whether it was present.
func (s *Set[T]) Remove(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, found := s.m[item]
	if !found {
		return false
	}

	delete(s.m, item)
	s.list.Remove(el)
	return true
}

// Clear drops every element.
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
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
	qry := &setQry[T]{
		set:   s,
		cur:   s.list.Head(),
		step:  1,
		limit: -1, //i.e. no limit
	}
	s.mu.RUnlock()

	for _, spec := range specs {
		err := spec(qry)
		if err != nil {
			return nil, err
		}
	}

	return qry, nil
}
