// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package all

import (
	// import to register testing helpers
	_ "github.com/M6AI/holdall/bitset/test"
	_ "github.com/M6AI/holdall/dllset/test"
	_ "github.com/M6AI/holdall/hashset/test"
	_ "github.com/M6AI/holdall/mapview/test"
	_ "github.com/M6AI/holdall/sliceview/test"
	_ "github.com/M6AI/holdall/sorted/test"
)
