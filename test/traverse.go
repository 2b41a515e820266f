// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test // import "github.com/M6AI/holdall/test"

import (
	"context"
	"testing"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M6AI/holdall"
)

// CollectionTestTraverse checks the traversal contract: natural order,
// Limit, Reverse, IndexWrap and end-of-stream discipline.
func CollectionTestTraverse[T comparable](f NewCollectionFunc[T], alphabet []T, fl Flavor) func(*testing.T) {
	type testcase struct {
		name    string
		idxs    []int
		specs   []holdall.IterSpec
		limit   int // -1 means all
		reverse bool
		idxWrap bool
	}

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			coll, err := f(pick(alphabet, tc.idxs)...)
			r.NoError(err, "error creating collection")

			src, err := coll.Iter(tc.specs...)
			if tc.reverse && !fl.Ordered {
				r.Error(err, "expected Reverse to be rejected")
				a.True(holdall.IsUnordered(err), "expected the Unordered error, got %v", err)
				return
			}
			r.NoError(err, "error starting traversal")

			want := expect(alphabet, tc.idxs, fl)
			if tc.reverse {
				rev := make([]T, len(want))
				for i, el := range want {
					rev[len(want)-1-i] = el
				}
				want = rev
			}
			truncated := tc.limit >= 0 && tc.limit < len(want)
			if truncated {
				want = want[:tc.limit]
			}

			got := drain(t, src)

			var els []interface{}
			if tc.idxWrap {
				for i, v := range got {
					iw, ok := v.(holdall.IndexWrapper)
					r.True(ok, "expected an IndexWrapper, got %T", v)

					idx := i
					if tc.reverse {
						idx = len(want) - 1 - i
					}
					if fl.Ordered {
						a.Equal(idx, iw.Index(), "position mismatch")
					}
					els = append(els, iw.Value())
				}
			} else {
				els = got
			}

			if fl.Ordered {
				r.Equal(len(want), len(els), "traversal length mismatch")
				for i, el := range want {
					a.EqualValues(el, els[i], "element mismatch at %d", i)
				}
			} else if truncated {
				// a capped traversal of an unordered collection yields
				// some distinct elements, not a particular prefix
				r.Equal(len(want), len(els), "traversal length mismatch")
				full := expect(alphabet, tc.idxs, fl)
				seen := make(map[interface{}]bool)
				for _, el := range els {
					a.False(seen[el], "element %v yielded twice", el)
					seen[el] = true
					a.Contains(full, el, "yielded element not in the collection")
				}
			} else {
				a.ElementsMatch(want, els, "traversal multiset mismatch")
			}

			// exhausted sources stay exhausted
			_, err = src.Next(context.Background())
			a.True(luigi.IsEOS(err), "expected end-of-stream after exhaustion, got %v", err)
		}
	}

	tcs := []testcase{
		{name: "order", idxs: []int{0, 2, 1, 2, 4}, limit: -1},
		{name: "limit", idxs: []int{0, 2, 1, 2, 4}, specs: []holdall.IterSpec{holdall.Limit(2)}, limit: 2},
		{name: "limitZero", idxs: []int{0, 2, 1}, specs: []holdall.IterSpec{holdall.Limit(0)}, limit: 0},
		{name: "limitOver", idxs: []int{0, 2}, specs: []holdall.IterSpec{holdall.Limit(10)}, limit: 10},
		{name: "reverse", idxs: []int{0, 2, 1, 2, 4}, specs: []holdall.IterSpec{holdall.Reverse(true)}, limit: -1, reverse: true},
		{name: "indexWrap", idxs: []int{0, 2, 1, 2, 4}, specs: []holdall.IterSpec{holdall.IndexWrap(true)}, limit: -1, idxWrap: true},
		{name: "reverseWrapped", idxs: []int{0, 2, 1, 2, 4}, specs: []holdall.IterSpec{holdall.Reverse(true), holdall.IndexWrap(true)}, limit: -1, reverse: true, idxWrap: true},
		{name: "merged", idxs: []int{0, 2, 1, 2, 4}, specs: []holdall.IterSpec{holdall.MergeIterSpec(holdall.Limit(3), holdall.IndexWrap(true))}, limit: 3, idxWrap: true},
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}
	}
}
