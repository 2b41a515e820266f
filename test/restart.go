// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test // import "github.com/M6AI/holdall/test"

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CollectionTestRestart checks that every Iter call starts a fresh,
// independent traversal: interleaved pulls from two sources over the
// same unchanged collection don't disturb each other, and both yield
// the same elements in the same order.
func CollectionTestRestart[T comparable](f NewCollectionFunc[T], alphabet []T, fl Flavor) func(*testing.T) {
	return func(t *testing.T) {
		a := assert.New(t)
		r := require.New(t)

		coll, err := f(pick(alphabet, []int{0, 1, 2, 3, 4})...)
		r.NoError(err, "error creating collection")

		first, err := coll.Iter()
		r.NoError(err, "error starting first traversal")
		second, err := coll.Iter()
		r.NoError(err, "error starting second traversal")

		ctx := context.Background()

		// advance the first cursor before the second even starts
		head, err := first.Next(ctx)
		r.NoError(err, "error pulling head from first traversal")

		got2 := drain(t, second)
		got1 := append([]interface{}{head}, drain(t, first)...)

		r.Equal(coll.Len(), len(got1), "first traversal element count mismatch")
		r.Equal(len(got1), len(got2), "traversal element counts differ")

		if fl.Ordered {
			a.Equal(got1, got2, "independent traversals disagree on order")
		} else {
			a.ElementsMatch(got1, got2, "independent traversals disagree on contents")
		}
	}
}
