// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package bitset // import "github.com/M6AI/holdall/bitset"

import (
	"context"

	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

type setQry struct {
	roster []uint64
	pulled int

	limit   int
	reverse bool
	idxWrap bool
}

func (qry *setQry) Limit(n int) error {
	qry.limit = n
	return nil
}

func (qry *setQry) Reverse(yes bool) error {
	qry.reverse = yes
	return nil
}

func (qry *setQry) IndexWrap(wrap bool) error {
	qry.idxWrap = wrap
	return nil
}

func (qry *setQry) Next(ctx context.Context) (interface{}, error) {
	if qry.limit == 0 {
		return nil, luigi.EOS{}
	}
	qry.limit--

	if qry.pulled >= len(qry.roster) {
		return nil, luigi.EOS{}
	}

	idx := qry.pulled
	if qry.reverse {
		idx = len(qry.roster) - 1 - qry.pulled
	}
	qry.pulled++

	if qry.idxWrap {
		return holdall.WrapWithIndex(qry.roster[idx], idx), nil
	}
	return qry.roster[idx], nil
}
