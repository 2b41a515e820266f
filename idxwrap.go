// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package holdall

// IndexWrapper pairs an element with its position in the traversal's
// natural order. Sources yield these when the IndexWrap spec is set.
type IndexWrapper interface {
	Index() int
	Value() interface{}
}

type idxWrapper struct {
	idx int
	v   interface{}
}

func (iw *idxWrapper) Index() int {
	return iw.idx
}

func (iw *idxWrapper) Value() interface{} {
	return iw.v
}

func WrapWithIndex(v interface{}, idx int) IndexWrapper {
	return &idxWrapper{
		idx: idx,
		v:   v,
	}
}
