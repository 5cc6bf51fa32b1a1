// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package minheap

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrHeapOrder is wrapped by every error reported by Verify.
var ErrHeapOrder = errors.New("heap order violated")

// Verify checks that no element compares less than its parent and returns
// an error describing every violation found, or nil. A heap can only be
// inconsistent if its comparison function is not a strict weak ordering.
func (h *MinHeap[T]) Verify() error {
	errs := &errors.M{}
	for i := 1; i < len(h.values); i++ {
		p := parent(i)
		if h.less(i, p) {
			errs.Append(fmt.Errorf("%w: [%v] %v < parent [%v] %v", ErrHeapOrder, i, h.values[i], p, h.values[p]))
		}
	}
	return errs.Err()
}
