// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"github.com/peckdistillate329/snappy-go/varint"
)

// DecodedLen returns the length of the decoded block, given its
// compressed form.
//
// It reads only the varint length prefix and fails with
// ErrInvalidLength if the prefix is malformed: empty input, a fifth
// byte with its continuation bit set, or a value that would not fit a
// uint32.
func DecodedLen(src []byte) (int, error) {
	v, n := varint.Decode(src)
	if n == 0 {
		return 0, ErrInvalidLength
	}
	return int(v), nil
}

// IsValidBlock reports whether DecodeBlock would succeed on src given
// a destination sized exactly to its declared length. It runs the
// same bounds checks as DecodeBlock but never allocates or writes
// output, so it can be used to screen untrusted input before
// committing to an allocation sized by DecodedLen.
func IsValidBlock(src []byte) bool {
	declaredLen, n := varint.Decode(src)
	if n == 0 {
		return false
	}
	op, err := decodeTagStream(nil, src[n:], int(declaredLen))
	return err == nil && op == int(declaredLen)
}
