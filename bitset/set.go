// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package bitset provides an owned set of uint64 elements backed by a
// serialized roaring bitmap. Natural order is ascending numeric order.
// A traversal fixes its element roster when it starts.
package bitset // import "github.com/M6AI/holdall/bitset"

import (
	"sync"

	"github.com/dgraph-io/sroar"
	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

// Set is a roaring-bitmap set of uint64 elements.
type Set struct {
	mu   sync.RWMutex
	bmap *sroar.Bitmap
}

var _ holdall.Collection[uint64] = (*Set)(nil)

// New returns an empty set.
func New() *Set {
	return &Set{
		bmap: sroar.NewBitmap(),
	}
}

// From returns a set holding the given elements, duplicates collapsed.
func From(items ...uint64) *Set {
	s := New()
	for _, item := range items {
		s.bmap.Set(item)
	}
	return s
}

// Insert adds item and reports whether the set changed.
func (s *Set) Insert(item uint64) (modified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bmap.Contains(item) {
		return false
	}

	s.bmap.Set(item)
	return true
}

// Remove deletes item and reports whether it was present.
func (s *Set) Remove(item uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bmap.Remove(item)
}

// Clear drops every element.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bmap = sroar.NewBitmap()
}

func (s *Set) Contains(item uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bmap.Contains(item)
}

func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.bmap.GetCardinality()
}

func (s *Set) Iter(specs ...holdall.IterSpec) (luigi.Source, error) {
	s.mu.RLock()
	roster := s.bmap.ToArray()
	s.mu.RUnlock()

	qry := &setQry{
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
