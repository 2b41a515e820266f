// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package hashset // import "github.com/M6AI/holdall/hashset"

import (
	"context"
	"testing"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/test"
)

func drainStrings(t *testing.T, src luigi.Source) []string {
	r := require.New(t)

	ctx := context.Background()
	var got []string
	for {
		v, err := src.Next(ctx)
		if luigi.IsEOS(err) {
			break
		}
		r.NoError(err, "error pulling from source")
		got = append(got, v.(string))
	}
	return got
}

func TestHashSet(t *testing.T) {
	t.Run("HashSet", test.CollectionTest(func(items ...string) (holdall.Collection[string], error) {
		return From(items...), nil
	}, test.Strings, test.Flavor{Dedupe: true}))
}

func TestSetOps(t *testing.T) {
	a := assert.New(t)

	s := New[string]()

	a.True(s.Insert("a"), "first insert must modify")
	a.False(s.Insert("a"), "repeated insert must not modify")
	a.True(s.Insert("b"))
	a.Equal(2, s.Len())

	a.True(s.Remove("a"), "removing a held element must report true")
	a.False(s.Remove("a"), "removing an absent element must report false")
	a.False(s.Contains("a"))
	a.Equal(1, s.Len())

	s.Clear()
	a.Equal(0, s.Len())
	a.False(s.Contains("b"))
}

func TestTraversalRosterFixedAtStart(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	s := From("a", "b")

	src, err := s.Iter()
	r.NoError(err, "error starting traversal")

	// mutations after the traversal started affect Len and Contains
	// but not the running cursor
	s.Insert("c")
	a.Equal(3, s.Len())

	got := map[string]bool{}
	for _, v := range drainStrings(t, src) {
		got[v] = true
	}
	a.Equal(map[string]bool{"a": true, "b": true}, got, "running traversal picked up a later insert")
}
