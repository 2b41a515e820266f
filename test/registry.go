// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package test // import "github.com/M6AI/holdall/test"

import (
	"testing"
)

// CollectionTestFuncs holds the prepared suites of every registered
// implementation, keyed by name.
var CollectionTestFuncs map[string]func(*testing.T)

func init() {
	CollectionTestFuncs = map[string]func(*testing.T){}
}

// Register adds a prepared suite under name. Implementations call this
// from their test package's init; test/all imports those packages for
// the side effect.
func Register(name string, f func(*testing.T)) {
	CollectionTestFuncs[name] = f
}

// RunCollectionTests runs the suite of every registered
// implementation.
func RunCollectionTests(t *testing.T) {
	for name, f := range CollectionTestFuncs {
		t.Run(name, f)
	}
}
