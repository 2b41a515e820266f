// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package mapview // import "github.com/M6AI/holdall/mapview"

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/test"
)

func TestMapView(t *testing.T) {
	t.Run("MapView", test.CollectionTest(func(items ...string) (holdall.Collection[string], error) {
		m := make(map[string]int, len(items))
		for i, item := range items {
			m[item] = i
		}
		return Keys(m), nil
	}, test.Strings, test.Flavor{Dedupe: true}))
}

func TestKeysObserveOwnerMutation(t *testing.T) {
	a := assert.New(t)

	m := map[string]int{"one": 1, "two": 2}
	v := Keys(m)

	a.Equal(2, v.Len())
	a.True(v.Contains("one"))

	m["three"] = 3
	a.Equal(3, v.Len(), "insert not observed")
	a.True(v.Contains("three"))

	delete(m, "one")
	a.Equal(2, v.Len(), "delete not observed")
	a.False(v.Contains("one"))
}

func TestReverseRejected(t *testing.T) {
	a := assert.New(t)

	v := Keys(map[string]struct{}{"a": {}, "b": {}})

	_, err := v.Iter(holdall.Reverse(true))
	a.Error(err)
	a.True(holdall.IsUnordered(err), "expected the Unordered error, got %v", err)
}
