// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/hashset"
	mtest "github.com/M6AI/holdall/test"
)

func init() {
	mtest.Register("hashset", mtest.CollectionTest(func(items ...string) (holdall.Collection[string], error) {
		return hashset.From(items...), nil
	}, mtest.Strings, mtest.Flavor{Dedupe: true}))
}
