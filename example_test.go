// SPDX-FileCopyrightText: 2026 The holdall Authors
//
// SPDX-License-Identifier: MIT

package holdall_test

import (
	"context"
	"fmt"

	"github.com/ssbc/go-luigi"

	"github.com/M6AI/holdall"
	"github.com/M6AI/holdall/sliceview"
)

func ExampleSingle() {
	gift := holdall.NewSingle("gift")

	fmt.Println(gift.Contains("surprise"))
	fmt.Println(gift.Contains("gift"))
	// Output:
	// false
	// true
}

func ExampleCollection() {
	items := []string{"item_1", "item_2"}
	view := sliceview.New(&items)

	fmt.Println(view.Contains("surprise"))
	fmt.Println(view.Len())

	src, err := view.Iter()
	if err != nil {
		fmt.Println(err)
		return
	}

	snk := luigi.FuncSink(func(ctx context.Context, v interface{}, err error) error {
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	})

	if err := luigi.Pump(context.TODO(), snk, src); err != nil {
		fmt.Println(err)
	}
	// Output:
	// false
	// 2
	// item_1
	// item_2
}
