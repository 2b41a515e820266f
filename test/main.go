// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package test exports the conformance suite every holdall.Collection
// implementation is expected to pass. Implementations register a
// prepared suite from their test package; test/all runs the whole
// registry in one go.
package test // import "github.com/M6AI/holdall/test"

import (
	"context"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/require"

	"github.com/M6AI/holdall"
)

// NewCollectionFunc builds a fresh collection preloaded with items, in
// the order given. Called once per test case.
type NewCollectionFunc[T comparable] func(items ...T) (holdall.Collection[T], error)

// Flavor describes how a collection shapes its contents, so the suite
// knows what to expect from it.
type Flavor struct {
	// Ordered collections have a defined natural order and support
	// Reverse. Unordered ones are compared as multisets and must
	// reject Reverse with holdall.Unordered.
	Ordered bool

	// Dedupe collections collapse duplicate insertions.
	Dedupe bool

	// Sorted collections order elements ascending regardless of
	// insertion order. Implies Ordered.
	Sorted bool
}

// Strings is the default element alphabet for string collections, in
// ascending order as the Sorted expectation requires.
var Strings = []string{"apricot", "fig", "medlar", "quince", "sloe"}

// CollectionTest returns the full suite for one implementation. The
// alphabet supplies distinct elements of the collection's type and
// must be in ascending order when the flavor is Sorted.
func CollectionTest[T comparable](f NewCollectionFunc[T], alphabet []T, fl Flavor) func(*testing.T) {
	return func(t *testing.T) {
		t.Run("Membership", CollectionTestMembership(f, alphabet, fl))
		t.Run("Traverse", CollectionTestTraverse(f, alphabet, fl))
		t.Run("Restart", CollectionTestRestart(f, alphabet, fl))
	}
}

// expect shapes an insertion sequence (indexes into the alphabet) into
// the element sequence the flavor promises to yield.
func expect[T comparable](alphabet []T, idxs []int, fl Flavor) []T {
	roster := idxs
	if fl.Dedupe {
		roster = nil
		seen := make(map[int]bool)
		for _, idx := range idxs {
			if !seen[idx] {
				seen[idx] = true
				roster = append(roster, idx)
			}
		}
	}

	if fl.Sorted {
		roster = append([]int(nil), roster...)
		sort.Ints(roster)
	}

	els := make([]T, len(roster))
	for i, idx := range roster {
		els[i] = alphabet[idx]
	}
	return els
}

// pick maps alphabet indexes to elements, insertion order preserved.
func pick[T comparable](alphabet []T, idxs []int) []T {
	els := make([]T, len(idxs))
	for i, idx := range idxs {
		els[i] = alphabet[idx]
	}
	return els
}

// drain pulls src dry and returns everything it yielded before
// end-of-stream.
func drain(t *testing.T, src luigi.Source) []interface{} {
	r := require.New(t)

	ctx := context.Background()
	var got []interface{}
	for {
		v, err := src.Next(ctx)
		if luigi.IsEOS(errors.Cause(err)) {
			break
		}
		r.NoError(err, "error pulling from source")
		got = append(got, v)
	}
	return got
}
