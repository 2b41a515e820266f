// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package holdall splits value containment into its two capability
// tiers. A Container can do exactly one thing: answer whether it holds
// an item. A Collection can additionally report how many elements it
// holds and hand out traversals over them. Any type with the right
// method set satisfies a tier; there is no registration and no
// hierarchy beyond the embedding below.
//
// Single is the smallest possible Container. View wraps any Collection
// into a read-only facade. The concrete collections live in their own
// packages: sliceview and mapview borrow caller-owned Go containers,
// hashset, dllset, sorted and bitset own their elements.
package holdall // import "github.com/M6AI/holdall"

import (
	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
)

// Container is the membership tier: it answers whether it holds an
// item, nothing more.
type Container[T comparable] interface {
	// Contains reports whether item is held. A pure query with no side
	// effects.
	Contains(item T) bool
}

// Collection is the full tier. On top of membership it knows its
// element count and can be traversed in its natural order.
type Collection[T comparable] interface {
	Container[T]

	// Len returns the current element count. Zero for an empty
	// collection, never negative.
	Len() int

	// Iter returns a fresh source over the elements, constrained by the
	// passed specs. Every call starts an independent traversal;
	// exhaustion is signaled with luigi.EOS, not an error.
	Iter(specs ...IterSpec) (luigi.Source, error)
}

type unordered struct{}

// Unordered is returned by Iter when a spec asks for an order the
// collection doesn't have, e.g. Reverse on a hash set.
var Unordered unordered

func (unordered) Error() string {
	return "unordered collection"
}

// IsUnordered returns whether a particular error is the Unordered error.
func IsUnordered(err error) bool {
	_, ok := errors.Cause(err).(unordered)
	return ok
}
