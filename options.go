// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package minheap

type options[T any] struct {
	sliceCap int
	data     []T
	compare  func(a, b T) int
}

// Option represents the options that can be passed to New, NewComparable
// and NewFunc.
type Option[T any] func(*options[T])

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap's elements. It is ignored if WithData is also specified.
func WithSliceCap[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = n
	}
}

// WithData sets the initial contents of the heap. The heap takes ownership
// of the supplied slice and reorders it in place.
func WithData[T any](values []T) Option[T] {
	return func(o *options[T]) {
		o.data = values
	}
}

// WithCompare sets the comparison function used to order the heap,
// overriding the element type's natural order. fn must return a negative
// number, zero or a positive number when a is less than, equal to or
// greater than b and must be a consistent strict weak ordering.
func WithCompare[T any](fn func(a, b T) int) Option[T] {
	return func(o *options[T]) {
		o.compare = fn
	}
}
