// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snappy implements the Snappy block-based compression format.
// It aims for very high speeds and reasonable compression.
//
// This package implements only the block format: a single
// self-delimiting buffer in, a single buffer out. The separate
// framing/streaming format described at
// https://github.com/google/snappy/blob/master/framing_format.txt is
// out of scope; callers that need to embed blocks in a larger
// container (checksums, chunk boundaries, stream identifiers) supply
// that framing themselves.
//
// The C++ reference implementation is at https://github.com/google/snappy
package snappy // import "github.com/peckdistillate329/snappy-go"

import (
	"errors"
)

var (
	// ErrCorrupt reports that the input is invalid: a malformed tag or
	// a length/offset that would read or write out of bounds. This is
	// the corrupted_data error of the closed taxonomy.
	ErrCorrupt = errors.New("snappy: corrupt input")
	// ErrTooLarge reports that the uncompressed length passed to
	// Encode/EncodeBlock exceeds the format's 2^32-1 byte limit. This
	// is the input_too_large error of the closed taxonomy.
	ErrTooLarge = errors.New("snappy: source length exceeds format limit")
	// ErrInvalidLength reports a malformed varint length prefix: a
	// non-terminating fifth byte, an empty input, or a value that
	// exceeds 2^32-1. This is the invalid_length error of the closed
	// taxonomy.
	ErrInvalidLength = errors.New("snappy: invalid length prefix")
	// ErrInsufficientBuffer reports that the destination buffer passed
	// to EncodeBlock or DecodeBlock is smaller than required. This is
	// the insufficient_buffer error of the closed taxonomy.
	ErrInsufficientBuffer = errors.New("snappy: insufficient buffer")
)

/*
Each encoded block begins with the varint-encoded length of the decoded
data, followed by a sequence of chunks. Chunks begin and end on byte
boundaries. The first byte of each chunk is broken into its 2 least and
6 most significant bits, called l and m: l ranges in [0, 4) and m
ranges in [0, 64). l is the chunk tag. Zero means a literal tag. All
other values mean a copy tag.

For literal tags:
  - If m < 60, the next 1 + m bytes are literal bytes.
  - Otherwise, let n be the little-endian unsigned integer denoted by
    the next m - 59 bytes. The next 1 + n bytes after that are literal
    bytes.

For copy tags, length bytes are copied from offset bytes ago, in the
style of Lempel-Ziv compression algorithms. In particular:
  - For l == 1, the offset ranges in [1, 1<<11) and the length in
    [4, 12). The length is 4 + the low 3 bits of m. The high 3 bits of
    m form bits 8-10 of the offset. The next byte is bits 0-7 of the
    offset.
  - For l == 2, the offset ranges in [1, 1<<16) and the length in
    [1, 65). The length is 1 + m. The offset is the little-endian
    unsigned integer denoted by the next 2 bytes.
  - For l == 3, the offset ranges in [1, 1<<32) and the length in
    [1, 65). The length is 1 + m. The offset is the little-endian
    unsigned integer denoted by the next 4 bytes.
*/
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// maxUncompressedSize is the largest uncompressed length the block
// format's varint length prefix can express, and the largest input
// Encode will accept.
const maxUncompressedSize = 0xffffffff

// MaxEncodedLen returns the maximum length of a snappy block, given its
// uncompressed length.
//
// It returns a negative number if srcLen is negative, exceeds 2^32-1,
// or the bound does not fit in an int.
func MaxEncodedLen(srcLen int) int {
	if srcLen < 0 || uint64(srcLen) > maxUncompressedSize {
		return -1
	}
	n := uint64(srcLen)
	n = 32 + n + n/6
	if n > uint64(^uint(0)>>1) {
		return -1
	}
	return int(n)
}
