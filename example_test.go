// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package minheap_test

import (
	"cmp"
	"fmt"

	"cloudeng.io/minheap"
)

func ExampleNew() {
	h := minheap.New[int]()
	for _, i := range []int{7, 2, 9, 1, 5} {
		h.Insert(i)
	}
	var sorted []int
	for !h.Empty() {
		v, _ := h.ExtractMin()
		sorted = append(sorted, v)
	}
	fmt.Println(sorted)
	_, err := h.PeekMin()
	fmt.Println(err)
	// Output:
	// [1 2 5 7 9]
	// heap is empty
}

func ExampleWithCompare() {
	h := minheap.New(minheap.WithCompare(func(a, b int) int {
		return cmp.Compare(b, a)
	}))
	for _, i := range []int{5, 1, 3} {
		h.Insert(i)
	}
	for !h.Empty() {
		v, _ := h.ExtractMin()
		fmt.Printf("%v ", v)
	}
	fmt.Println()
	// Output:
	// 5 3 1
}

func ExampleNewFunc() {
	type job struct {
		id       string
		deadline int
	}
	h := minheap.NewFunc(func(a, b job) int {
		return cmp.Compare(a.deadline, b.deadline)
	})
	h.Insert(job{"report", 30})
	h.Insert(job{"deploy", 10})
	h.Insert(job{"review", 20})
	next, _ := h.PeekMin()
	fmt.Println(next.id, h.Len())
	// Output:
	// deploy 3
}
