// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	var buf bytes.Buffer
	r.NoError(run(&buf), "error producing transcript")

	want := "False\nTrue\nFalse\nTrue\n2\nitem_1\nitem_2\n"
	a.Equal(want, buf.String())
}
