// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// This file implements the pure mapping between (length, offset) pairs
// and the tag bytes (plus follow-on bytes) that encode them, and the
// inverse decode. See the format description in snappy.go.

// tagKind identifies whether a decoded tag byte is a literal or a copy;
// the three copy forms (copy-1, copy-2, copy-4) share kindCopy.
type tagKind int

const (
	kindLiteral tagKind = iota
	kindCopy
)

// decodeTag classifies the tag byte at src[0] and reports its kind,
// the length and offset it encodes, and how many bytes of src
// (including the tag byte itself) the follow-on fields occupy.
//
// offset is 0 for literals. length is always >= 1. n is 0 if src is
// too short to hold the tag's follow-on bytes; callers must treat that
// as corrupt input.
func decodeTag(src []byte) (kind tagKind, length int, offset int, n int) {
	if len(src) == 0 {
		return 0, 0, 0, 0
	}
	tag := src[0]
	switch tag & 0x03 {
	case tagLiteral:
		x := uint32(tag >> 2)
		switch {
		case x < 60:
			return kindLiteral, int(x) + 1, 0, 1
		case x == 60:
			if len(src) < 2 {
				return 0, 0, 0, 0
			}
			return kindLiteral, int(src[1]) + 1, 0, 2
		case x == 61:
			if len(src) < 3 {
				return 0, 0, 0, 0
			}
			return kindLiteral, int(uint32(src[1])|uint32(src[2])<<8) + 1, 0, 3
		case x == 62:
			if len(src) < 4 {
				return 0, 0, 0, 0
			}
			return kindLiteral, int(uint32(src[1])|uint32(src[2])<<8|uint32(src[3])<<16) + 1, 0, 4
		default: // x == 63
			if len(src) < 5 {
				return 0, 0, 0, 0
			}
			return kindLiteral, int(uint32(src[1])|uint32(src[2])<<8|uint32(src[3])<<16|uint32(src[4])<<24) + 1, 0, 5
		}
	case tagCopy1:
		if len(src) < 2 {
			return 0, 0, 0, 0
		}
		length = 4 + int((tag>>2)&0x07)
		offset = int(uint32(tag&0xe0)<<3 | uint32(src[1]))
		return kindCopy, length, offset, 2
	case tagCopy2:
		if len(src) < 3 {
			return 0, 0, 0, 0
		}
		length = int(tag>>2) + 1
		offset = int(uint32(src[1]) | uint32(src[2])<<8)
		return kindCopy, length, offset, 3
	default: // tagCopy4
		if len(src) < 5 {
			return 0, 0, 0, 0
		}
		length = int(tag>>2) + 1
		offset = int(uint32(src[1]) | uint32(src[2])<<8 | uint32(src[3])<<16 | uint32(src[4])<<24)
		return kindCopy, length, offset, 5
	}
}

// emitLiteralTag writes the tag for a literal of the given length to
// dst and returns the number of bytes written. It does not write the
// literal bytes themselves; emitLiteral in encode.go copies them after
// the tag.
func emitLiteralTag(dst []byte, length int) int {
	n := length - 1
	switch {
	case n < 60:
		dst[0] = byte(n)<<2 | tagLiteral
		return 1
	case n < 1<<8:
		dst[0] = 60<<2 | tagLiteral
		dst[1] = byte(n)
		return 2
	case n < 1<<16:
		dst[0] = 61<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		return 3
	case n < 1<<24:
		dst[0] = 62<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		dst[3] = byte(n >> 16)
		return 4
	default:
		dst[0] = 63<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		dst[3] = byte(n >> 16)
		dst[4] = byte(n >> 24)
		return 5
	}
}

// emitCopyTag writes a single copy tag (length <= 64, any legal
// offset) to dst and returns the number of bytes written. Splitting
// longer copies into multiple tags is the caller's job (see
// emitCopy in encode.go).
func emitCopyTag(dst []byte, offset, length int) int {
	switch {
	case length <= 11 && offset < 2048:
		dst[0] = byte(offset>>8)<<5 | byte(length-4)<<2 | tagCopy1
		dst[1] = byte(offset)
		return 2
	case offset < 65536:
		dst[0] = byte(length-1)<<2 | tagCopy2
		dst[1] = byte(offset)
		dst[2] = byte(offset >> 8)
		return 3
	default:
		dst[0] = byte(length-1)<<2 | tagCopy4
		dst[1] = byte(offset)
		dst[2] = byte(offset >> 8)
		dst[3] = byte(offset >> 16)
		dst[4] = byte(offset >> 24)
		return 5
	}
}
