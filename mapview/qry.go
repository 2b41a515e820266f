// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package mapview // import "github.com/M6AI/holdall/mapview"

import (
	"context"

	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

type mapQry[K comparable] struct {
	roster []K
	pulled int

	limit   int
	idxWrap bool
}

func (qry *mapQry[K]) Limit(n int) error {
	qry.limit = n
	return nil
}

func (qry *mapQry[K]) Reverse(yes bool) error {
	if yes {
		return holdall.Unordered
	}
	return nil
}

func (qry *mapQry[K]) IndexWrap(wrap bool) error {
	qry.idxWrap = wrap
	return nil
}

func (qry *mapQry[K]) Next(ctx context.Context) (interface{}, error) {
	if qry.limit == 0 {
		return nil, luigi.EOS{}
	}
	qry.limit--

	if qry.pulled >= len(qry.roster) {
		return nil, luigi.EOS{}
	}

	idx := qry.pulled
	qry.pulled++

	if qry.idxWrap {
		return holdall.WrapWithIndex(qry.roster[idx], idx), nil
	}
	return qry.roster[idx], nil
}
