// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package minheap

import (
	"cmp"

	"cloudeng.io/errors"
)

// ErrEmptyHeap is returned by PeekMin and ExtractMin when the heap
// contains no elements.
var ErrEmptyHeap = errors.New("heap is empty")

// Comparable represents a type that defines its own natural order.
// Compare returns a negative number, zero or a positive number when the
// receiver is less than, equal to or greater than x.
type Comparable[T any] interface {
	Compare(x T) int
}

// MinHeap is a binary min-heap stored as a complete binary tree in a
// slice: the root is at index 0 and the children of the element at index
// i are at 2i+1 and 2i+2. A MinHeap must be created by one of New,
// NewComparable or NewFunc.
type MinHeap[T any] struct {
	values  []T
	compare func(a, b T) int
}

// New returns a heap ordered by the natural order of T unless
// WithCompare is specified.
func New[T cmp.Ordered](opts ...Option[T]) *MinHeap[T] {
	return newHeap(cmp.Compare[T], opts)
}

// NewComparable returns a heap ordered by T's Compare method unless
// WithCompare is specified.
func NewComparable[T Comparable[T]](opts ...Option[T]) *MinHeap[T] {
	return newHeap(func(a, b T) int { return a.Compare(b) }, opts)
}

// NewFunc returns a heap ordered by compare, which has the same
// requirements as the function passed to WithCompare. It panics if
// compare is nil and no WithCompare option is supplied.
func NewFunc[T any](compare func(a, b T) int, opts ...Option[T]) *MinHeap[T] {
	return newHeap(compare, opts)
}

func newHeap[T any](compare func(a, b T) int, opts []Option[T]) *MinHeap[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	if o.compare != nil {
		compare = o.compare
	}
	if compare == nil {
		panic("minheap: nil comparison function")
	}
	h := &MinHeap[T]{compare: compare}
	if o.data != nil {
		h.values = o.data
		h.heapify()
		return h
	}
	h.values = make([]T, 0, o.sliceCap)
	return h
}

// heapify uses Floyd's algorithm to order an arbitrary slice.
func (h *MinHeap[T]) heapify() {
	for i := len(h.values)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Empty returns true if the heap contains no elements.
func (h *MinHeap[T]) Empty() bool {
	return len(h.values) == 0
}

// Len returns the number of elements in the heap.
func (h *MinHeap[T]) Len() int {
	return len(h.values)
}

// PeekMin returns the smallest element without removing it.
func (h *MinHeap[T]) PeekMin() (T, error) {
	if len(h.values) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.values[0], nil
}

// ExtractMin removes and returns the smallest element.
func (h *MinHeap[T]) ExtractMin() (T, error) {
	var zero T
	if len(h.values) == 0 {
		return zero, ErrEmptyHeap
	}
	root := h.values[0]
	n := len(h.values) - 1
	h.values[0] = h.values[n]
	h.values[n] = zero // don't retain a reference in the backing array.
	h.values = h.values[:n]
	if n > 0 {
		h.siftDown(0)
	}
	return root, nil
}

// Insert adds element to the heap.
func (h *MinHeap[T]) Insert(element T) {
	h.values = append(h.values, element)
	h.siftUp(len(h.values) - 1)
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (2 * i) + 1 }
func right(i int) int  { return (2 * i) + 2 }

func (h *MinHeap[T]) less(i, j int) bool {
	return h.compare(h.values[i], h.values[j]) < 0
}

func (h *MinHeap[T]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *MinHeap[T]) siftUp(i int) {
	for i != 0 {
		p := parent(i)
		if !h.less(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *MinHeap[T]) siftDown(i int) {
	n := len(h.values)
	for {
		smallest := i
		l, r := left(i), right(i)
		if l < n && l > 0 && h.less(l, i) { // l <= 0 after int overflow
			smallest = l
		}
		// Compare against the current candidate, so ties keep the left child.
		if r < n && r > 0 && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
