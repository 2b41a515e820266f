// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// Package mapview adapts the key set of a caller-owned Go map into an
// unordered holdall.Collection. Maps are references, so membership and
// length follow the owner's inserts and deletes; a traversal fixes its
// key roster when it starts because the runtime offers no stable
// cursor into a live map.
package mapview // import "github.com/M6AI/holdall/mapview"

import (
	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
)

// View is an unordered collection over the keys of a caller-owned
// map[K]V. The map's values are never touched.
type View[K comparable, V any] struct {
	m map[K]V
}

var _ holdall.Collection[string] = View[string, int]{}

// Keys returns a view over the key set of m. The map stays owned by
// the caller; the view never writes to it.
func Keys[K comparable, V any](m map[K]V) View[K, V] {
	return View[K, V]{m: m}
}

func (v View[K, V]) Contains(key K) bool {
	_, ok := v.m[key]
	return ok
}

func (v View[K, V]) Len() int {
	return len(v.m)
}

func (v View[K, V]) Iter(specs ...holdall.IterSpec) (luigi.Source, error) {
	roster := make([]K, 0, len(v.m))
	for key := range v.m {
		roster = append(roster, key)
	}

	qry := &mapQry[K]{
		roster: roster,
		limit:  -1, //i.e. no limit
	}

	for _, spec := range specs {
		err := spec(qry)
		if err != nil {
			return nil, err
		}
	}

	return qry, nil
}
