// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package minheap provides a generic, slice backed binary min-heap.
//
// The ordering used by a heap is fixed when it is created. Types that
// satisfy cmp.Ordered use their natural order:
//
//	h := minheap.New[int]()
//	h.Insert(3)
//	h.Insert(1)
//	v, err := h.ExtractMin() // 1, nil
//
// Types that implement Comparable use their own Compare method, and any
// type at all can be ordered by supplying a comparison function:
//
//	h := minheap.NewFunc(func(a, b Task) int {
//		return cmp.Compare(a.Deadline, b.Deadline)
//	})
//
// WithCompare overrides the natural order, for example to obtain a
// max-heap:
//
//	h := minheap.New(minheap.WithCompare(func(a, b int) int {
//		return cmp.Compare(b, a)
//	}))
//
// PeekMin and ExtractMin return ErrEmptyHeap when called on an empty heap.
// A MinHeap is not safe for concurrent use; callers must serialize access.
package minheap
