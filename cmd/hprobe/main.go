// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

// hprobe walks the two capability tiers once and prints the probe
// transcript to stdout: membership answers of a single-item container,
// then membership, length and a full traversal of a two-element slice
// view. Operational chatter goes to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"go.mindeco.de/logging"

	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/sliceview"
)

var check = logging.CheckFatal

func main() {
	logging.SetupLogging(nil)
	log := logging.Logger(os.Args[0])

	err := run(os.Stdout)
	check(errors.Wrap(err, "error probing collections"))

	log.Log("event", "probe complete")
}

// pyBool spells booleans the way the transcript wants them.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func run(w io.Writer) error {
	gift := holdall.NewSingle("gift")
	fmt.Fprintln(w, pyBool(gift.Contains("surprise")))
	fmt.Fprintln(w, pyBool(gift.Contains("gift")))

	items := []string{"item_1", "item_2"}
	view := sliceview.New(&items)
	fmt.Fprintln(w, pyBool(view.Contains("surprise")))
	fmt.Fprintln(w, pyBool(view.Contains("item_1")))
	fmt.Fprintln(w, view.Len())

	src, err := view.Iter()
	if err != nil {
		return errors.Wrap(err, "error starting traversal")
	}

	snk := luigi.FuncSink(func(ctx context.Context, v interface{}, err error) error {
		if err != nil {
			if luigi.IsEOS(err) {
				return nil
			}
			return err
		}

		_, err = fmt.Fprintln(w, v)
		return err
	})

	return errors.Wrap(luigi.Pump(context.TODO(), snk, src), "error draining traversal")
}
