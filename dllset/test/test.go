// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/dllset"
	mtest "github.com/M6AI/holdall/test"
)

func init() {
	mtest.Register("dllset", mtest.CollectionTest(func(items ...string) (holdall.Collection[string], error) {
		return dllset.From(items...), nil
	}, mtest.Strings, mtest.Flavor{Ordered: true, Dedupe: true}))
}
