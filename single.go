// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package holdall

// Single is a Container holding exactly one item, fixed at
// construction. It deliberately satisfies only the membership tier:
// it has no length and no traversal, which is the whole difference
// between the two interfaces.
type Single[T comparable] struct {
	item T
}

var _ Container[string] = Single[string]{}

// NewSingle returns a Single holding item.
func NewSingle[T comparable](item T) Single[T] {
	return Single[T]{item: item}
}

// Contains reports whether probe equals the held item.
func (s Single[T]) Contains(probe T) bool {
	return probe == s.item
}
