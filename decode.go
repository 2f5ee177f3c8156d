// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"github.com/peckdistillate329/snappy-go/varint"
)

// DecodeBlock is the core decompress primitive. It writes the decoded
// form of src into dst and returns the number of bytes written.
//
// It fails with ErrInvalidLength if the length prefix is malformed,
// with ErrInsufficientBuffer if the declared uncompressed length
// exceeds len(dst), and with ErrCorrupt on any malformed tag or bounds
// violation in the tag stream.
func DecodeBlock(dst, src []byte) (int, error) {
	declaredLen, n := varint.Decode(src)
	if n == 0 {
		return 0, ErrInvalidLength
	}
	if uint64(len(dst)) < uint64(declaredLen) {
		return 0, ErrInsufficientBuffer
	}
	op, err := decodeTagStream(dst, src[n:], int(declaredLen))
	if err != nil {
		return 0, err
	}
	return op, nil
}

// Decode returns the decoded form of src.
//
// It is the ecosystem-familiar convenience form: if dst does not have
// sufficient capacity, Decode allocates and returns a new slice sized
// exactly to the declared uncompressed length; otherwise it writes
// into dst[:declaredLen] and returns that prefix.
func Decode(dst, src []byte) ([]byte, error) {
	declaredLen, n := varint.Decode(src)
	if n == 0 {
		return nil, ErrInvalidLength
	}
	if uint64(cap(dst)) < uint64(declaredLen) {
		dst = make([]byte, declaredLen)
	} else {
		dst = dst[:declaredLen]
	}
	op, err := decodeTagStream(dst, src[n:], int(declaredLen))
	if err != nil {
		return nil, err
	}
	return dst[:op], nil
}

// decodeTagStream walks the tag stream in tags (the compressed input
// with its length prefix already stripped), writing at most limit
// bytes. If dst is nil, it performs every bounds check without
// writing anything, for use by IsValidBlock. It returns the number of
// bytes produced (or that would have been produced) and reports
// ErrCorrupt on any violation of the tag-stream grammar.
func decodeTagStream(dst, tags []byte, limit int) (op int, err error) {
	ip := 0
	for ip < len(tags) {
		kind, length, offset, n := decodeTag(tags[ip:])
		if n == 0 {
			return op, ErrCorrupt
		}
		switch kind {
		case kindLiteral:
			litStart := ip + n
			litEnd := litStart + length
			if litEnd > len(tags) {
				return op, ErrCorrupt
			}
			if op+length > limit {
				return op, ErrCorrupt
			}
			if dst != nil {
				copy(dst[op:op+length], tags[litStart:litEnd])
			}
			op += length
			ip = litEnd
		case kindCopy:
			if offset == 0 || offset > op {
				return op, ErrCorrupt
			}
			if op+length > limit {
				return op, ErrCorrupt
			}
			if dst != nil {
				// offset < length is legal and means the copy
				// self-extends: byte k of the copy must observe what
				// byte k-offset of the same copy just wrote, so this
				// has to run one byte at a time rather than as a
				// single (possibly overlapping) slice copy.
				src := dst[op-offset:]
				out := dst[op : op+length]
				for i := range out {
					out[i] = src[i]
				}
			}
			op += length
			ip += n
		}
	}
	if op != limit {
		return op, ErrCorrupt
	}
	return op, nil
}
