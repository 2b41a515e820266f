// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/bitset"
	mtest "github.com/M6AI/holdall/test"
)

func init() {
	mtest.Register("bitset", mtest.CollectionTest(func(items ...uint64) (holdall.Collection[uint64], error) {
		return bitset.From(items...), nil
	}, []uint64{2, 3, 5, 7, 11}, mtest.Flavor{Ordered: true, Dedupe: true, Sorted: true}))
}
