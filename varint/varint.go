// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package varint implements the little-endian base-128 varint used as
// the length prefix of a Snappy block. Unlike a general-purpose varint
// codec it is deliberately bounded to uint32: Snappy blocks never
// describe an uncompressed length larger than 2^32-1, and a value that
// would need a sixth byte is corrupt input, not a larger integer.
package varint

// MaxLen is the maximum number of bytes a uint32 varint can occupy.
const MaxLen = 5

// Len returns the number of bytes Encode would write for v.
func Len(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// Encode writes the varint encoding of v to buf and returns the number
// of bytes written. buf must have length at least MaxLen.
func Encode(buf []byte, v uint32) int {
	i := 0
	for v >= 0x80 {
		buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	return i + 1
}

// Decode reads a varint from the front of src. It returns the decoded
// value and the number of bytes consumed. It returns (0, 0) if src is
// empty, ends before a terminating byte within MaxLen bytes, or
// decodes to a value that does not fit in a uint32 (i.e. a fifth byte
// with more than 4 significant bits, or a fifth byte whose
// continuation bit is set).
func Decode(src []byte) (v uint32, n int) {
	for i := 0; i < MaxLen && i < len(src); i++ {
		b := src[i]
		if i == MaxLen-1 && b > 0x0f {
			// A 5th byte can only supply 4 more bits (32 - 4*7 = 4)
			// before overflowing uint32.
			return 0, 0
		}
		v |= uint32(b&0x7f) << (7 * uint(i))
		if b < 0x80 {
			return v, i + 1
		}
	}
	return 0, 0
}
