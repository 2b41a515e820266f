// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package bitset // import "github.com/M6AI/holdall/bitset"

import (
	"context"
	"testing"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/test"
)

func TestBitSet(t *testing.T) {
	t.Run("BitSet", test.CollectionTest(func(items ...uint64) (holdall.Collection[uint64], error) {
		return From(items...), nil
	}, []uint64{2, 3, 5, 7, 11}, test.Flavor{Ordered: true, Dedupe: true, Sorted: true}))
}

func drainUints(t *testing.T, src luigi.Source) []uint64 {
	r := require.New(t)

	ctx := context.Background()
	var got []uint64
	for {
		v, err := src.Next(ctx)
		if luigi.IsEOS(err) {
			break
		}
		r.NoError(err, "error pulling from source")
		got = append(got, v.(uint64))
	}
	return got
}

func TestAscendingBitmapOrder(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	s := From(1000, 1, 70000, 1)

	a.Equal(3, s.Len(), "duplicate insert must collapse")
	a.True(s.Contains(70000))
	a.False(s.Contains(2))

	src, err := s.Iter()
	r.NoError(err, "error starting traversal")
	a.Equal([]uint64{1, 1000, 70000}, drainUints(t, src))

	src, err = s.Iter(holdall.Reverse(true))
	r.NoError(err, "error starting reverse traversal")
	a.Equal([]uint64{70000, 1000, 1}, drainUints(t, src))
}

func TestBitmapSetOps(t *testing.T) {
	a := assert.New(t)

	s := New()

	a.True(s.Insert(42))
	a.False(s.Insert(42), "repeated insert must not modify")
	a.True(s.Insert(7))
	a.Equal(2, s.Len())

	a.True(s.Remove(42))
	a.False(s.Remove(42))
	a.False(s.Contains(42))

	s.Clear()
	a.Equal(0, s.Len())
}
