// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package sorted // import "github.com/M6AI/holdall/sorted"

import (
	"context"
	"testing"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/test"
)

func TestSortedSet(t *testing.T) {
	t.Run("SortedSet", test.CollectionTest(func(items ...string) (holdall.Collection[string], error) {
		return From(items...), nil
	}, test.Strings, test.Flavor{Ordered: true, Dedupe: true, Sorted: true}))
}

func drainInts(t *testing.T, src luigi.Source) []int {
	r := require.New(t)

	ctx := context.Background()
	var got []int
	for {
		v, err := src.Next(ctx)
		if luigi.IsEOS(err) {
			break
		}
		r.NoError(err, "error pulling from source")
		got = append(got, v.(int))
	}
	return got
}

func TestAscendingRegardlessOfInsertion(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	s := From(9, 1, 5, 1, 3)

	a.Equal(4, s.Len(), "duplicate insert must collapse")
	a.True(s.Contains(5))
	a.False(s.Contains(4))

	src, err := s.Iter()
	r.NoError(err, "error starting traversal")
	a.Equal([]int{1, 3, 5, 9}, drainInts(t, src))

	src, err = s.Iter(holdall.Reverse(true))
	r.NoError(err, "error starting reverse traversal")
	a.Equal([]int{9, 5, 3, 1}, drainInts(t, src))
}

func TestInsertRemoveKeepOrder(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	s := New[int]()

	a.True(s.Insert(7))
	a.True(s.Insert(2))
	a.False(s.Insert(7), "repeated insert must not modify")
	a.True(s.Insert(5))

	a.True(s.Remove(7))
	a.False(s.Remove(7))

	src, err := s.Iter()
	r.NoError(err, "error starting traversal")
	a.Equal([]int{2, 5}, drainInts(t, src))

	s.Clear()
	a.Equal(0, s.Len())
}
