// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package all

import (
	"testing"

	mtest "github.com/M6AI/holdall/test"
)

func Test(t *testing.T) {
	t.Run("Collection", mtest.RunCollectionTests)
}
