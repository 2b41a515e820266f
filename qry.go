// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package holdall // import "github.com/M6AI/holdall"

// Iteration collects the knobs a traversal source understands. Specs
// configure it before the first element is pulled.
type Iteration interface {
	Limit(int) error
	Reverse(bool) error
	IndexWrap(bool) error
}

type IterSpec func(Iteration) error

func MergeIterSpec(spec ...IterSpec) IterSpec {
	return func(it Iteration) error {
		for _, f := range spec {
			err := f(it)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

func ErrorIterSpec(err error) IterSpec {
	return func(Iteration) error {
		return err
	}
}

// Limit caps the traversal at n elements.
func Limit(n int) IterSpec {
	return func(it Iteration) error {
		return it.Limit(n)
	}
}

// Reverse walks the collection back to front. Collections without an
// order reject it with Unordered.
func Reverse(yes bool) IterSpec {
	return func(it Iteration) error {
		return it.Reverse(yes)
	}
}

// IndexWrap makes the traversal yield IndexWrapper values pairing each
// element with its position.
func IndexWrap(wrap bool) IterSpec {
	return func(it Iteration) error {
		return it.IndexWrap(wrap)
	}
}
