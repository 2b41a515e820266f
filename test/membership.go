// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test // import "github.com/M6AI/holdall/test"

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CollectionTestMembership checks Contains and Len against every
// element of the alphabet, including the empty and duplicate cases.
func CollectionTestMembership[T comparable](f NewCollectionFunc[T], alphabet []T, fl Flavor) func(*testing.T) {
	type testcase struct {
		name string
		idxs []int
	}

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			coll, err := f(pick(alphabet, tc.idxs)...)
			r.NoError(err, "error creating collection")
			r.NotNil(coll, "returned collection is nil")

			held := make(map[int]bool)
			for _, idx := range tc.idxs {
				held[idx] = true
			}

			for idx, el := range alphabet {
				a.Equal(held[idx], coll.Contains(el), "membership mismatch for %v", el)
			}

			a.Equal(len(expect(alphabet, tc.idxs, fl)), coll.Len(), "length mismatch")

			if len(tc.idxs) == 0 {
				src, err := coll.Iter()
				r.NoError(err, "error traversing empty collection")
				a.Empty(drain(t, src), "empty collection yielded elements")
			}
		}
	}

	tcs := []testcase{
		{name: "empty"},
		{name: "one", idxs: []int{2}},
		{name: "some", idxs: []int{0, 2, 4}},
		{name: "all", idxs: []int{0, 1, 2, 3, 4}},
		{name: "dups", idxs: []int{1, 3, 1, 1, 3}},
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}
	}
}
