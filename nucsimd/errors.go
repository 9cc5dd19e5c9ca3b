// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import "fmt"

// LengthError reports a logical length that is negative or larger than the
// buffer it refers to.  Decode and ReverseComplement return it; the
// analytics panic with it.
type LengthError struct {
	// Op is the name of the operation, e.g. "Decode".
	Op string
	// Len is the requested length, in symbols (bits for Popcount).
	Len int
	// Cap is the largest length the buffer could hold.
	Cap int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("nucsimd.%s: length %d exceeds capacity %d", e.Op, e.Len, e.Cap)
}

func checkLength(op string, n, capacity int) error {
	if n < 0 || n > capacity {
		return &LengthError{Op: op, Len: n, Cap: capacity}
	}
	return nil
}

func mustLength(op string, n, capacity int) {
	if err := checkLength(op, n, capacity); err != nil {
		panic(err)
	}
}
