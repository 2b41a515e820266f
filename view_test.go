// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package holdall_test

import (
	"context"
	"testing"

	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/hashset"
	"github.com/M6AI/holdall/sliceview"
)

func TestViewDelegates(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	items := []string{"item_1", "item_2", "item_1"}
	v := holdall.NewView[string](sliceview.New(&items))

	a.True(v.Contains("item_1"))
	a.False(v.Contains("surprise"))
	a.Equal(3, v.Len())

	src, err := v.Iter()
	r.NoError(err, "error starting traversal")

	ctx := context.Background()
	var got []string
	for {
		el, err := src.Next(ctx)
		if luigi.IsEOS(err) {
			break
		}
		r.NoError(err)
		got = append(got, el.(string))
	}
	a.Equal(items, got, "view must yield the wrapped collection's order")
}

func TestViewStaysLive(t *testing.T) {
	a := assert.New(t)

	set := hashset.From("a")
	v := holdall.NewView[string](set)

	a.Equal(1, v.Len())

	// the view holds the collection itself, so owner mutations are
	// visible immediately
	set.Insert("b")
	a.Equal(2, v.Len())
	a.True(v.Contains("b"))

	set.Remove("a")
	a.False(v.Contains("a"))
}
