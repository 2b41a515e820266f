// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package dllset // import "github.com/M6AI/holdall/dllset"

import (
	"context"

	"github.com/denismitr/dll"
	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

type setQry[T comparable] struct {
	set *Set[T]
	cur *dll.Element[T]

	pos  int
	step int

	limit   int
	idxWrap bool
}

func (qry *setQry[T]) Limit(n int) error {
	qry.limit = n
	return nil
}

func (qry *setQry[T]) Reverse(yes bool) error {
	if !yes {
		return nil
	}

	qry.set.mu.RLock()
	defer qry.set.mu.RUnlock()

	qry.cur = qry.set.list.Tail()
	qry.pos = len(qry.set.m) - 1
	qry.step = -1
	return nil
}

func (qry *setQry[T]) IndexWrap(wrap bool) error {
	qry.idxWrap = wrap
	return nil
}

func (qry *setQry[T]) Next(ctx context.Context) (interface{}, error) {
	if qry.limit == 0 {
		return nil, luigi.EOS{}
	}
	qry.limit--

	qry.set.mu.RLock()
	defer qry.set.mu.RUnlock()

	if qry.cur == nil {
		return nil, luigi.EOS{}
	}

	v := qry.cur.Value()
	idx := qry.pos

	if qry.step < 0 {
		qry.cur = qry.cur.Prev()
	} else {
		qry.cur = qry.cur.Next()
	}
	qry.pos += qry.step

	if qry.idxWrap {
		return holdall.WrapWithIndex(v, idx), nil
	}
	return v, nil
}
