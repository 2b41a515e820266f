// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/mapview"
	mtest "github.com/M6AI/holdall/test"
)

func init() {
	mtest.Register("mapview", mtest.CollectionTest(func(items ...string) (holdall.Collection[string], error) {
		m := make(map[string]int, len(items))
		for i, item := range items {
			m[item] = i
		}
		return mapview.Keys(m), nil
	}, mtest.Strings, mtest.Flavor{Dedupe: true}))
}
