// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package sliceview // import "github.com/M6AI/holdall/sliceview"

import (
	"context"

	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

type sliceQry[T comparable] struct {
	items *[]T

	pulled int

	limit   int
	reverse bool
	idxWrap bool
}

func (qry *sliceQry[T]) Limit(n int) error {
	qry.limit = n
	return nil
}

func (qry *sliceQry[T]) Reverse(yes bool) error {
	qry.reverse = yes
	return nil
}

func (qry *sliceQry[T]) IndexWrap(wrap bool) error {
	qry.idxWrap = wrap
	return nil
}

func (qry *sliceQry[T]) Next(ctx context.Context) (interface{}, error) {
	if qry.limit == 0 {
		return nil, luigi.EOS{}
	}
	qry.limit--

	// bounds are taken fresh on every pull so owner mutations made
	// since the last pull stay visible
	cur := *qry.items
	if qry.pulled >= len(cur) {
		return nil, luigi.EOS{}
	}

	idx := qry.pulled
	if qry.reverse {
		idx = len(cur) - 1 - qry.pulled
	}
	qry.pulled++

	if qry.idxWrap {
		return holdall.WrapWithIndex(cur[idx], idx), nil
	}
	return cur[idx], nil
}
