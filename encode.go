// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"github.com/peckdistillate329/snappy-go/varint"
)

// Level selects the compression strategy. fast is the only strategy
// this package implements; better is reserved by the format for a
// future, slower, higher-ratio encoder and is currently treated as an
// alias for fast. Output remains format-compliant regardless of which
// level is requested.
type Level int

const (
	LevelFast Level = iota
	LevelBetter
)

// maxFragmentSize is the largest input slice a single call to
// encodeFragment processes; longer inputs are split by Encode into
// consecutive fragments of this size.
const maxFragmentSize = 65536

// EncodeBlock is the core compress primitive. It writes the Snappy
// encoding of src into dst and returns the number of bytes written.
//
// It fails with ErrTooLarge if src is longer than the format's
// 2^32-1 byte limit, and with ErrInsufficientBuffer if
// len(dst) < MaxEncodedLen(len(src)). lvl selects the compression
// strategy; LevelBetter currently behaves identically to LevelFast.
func EncodeBlock(dst, src []byte, lvl Level) (int, error) {
	n := MaxEncodedLen(len(src))
	if n < 0 {
		return 0, ErrTooLarge
	}
	if len(dst) < n {
		return 0, ErrInsufficientBuffer
	}
	return encodeBlock(dst, src), nil
}

// Encode returns the Snappy encoding of src, using LevelFast.
//
// It is the ecosystem-familiar convenience form used by callers that
// don't want to size their own destination buffer: if len(dst) is
// less than MaxEncodedLen(len(src)), Encode allocates a new slice; otherwise it
// overwrites dst[:MaxEncodedLen(len(src))] and returns the prefix that
// was actually used. It panics with ErrTooLarge if src exceeds the
// format's size limit, since unlike EncodeBlock there is no output
// parameter through which to report that error.
func Encode(dst, src []byte) []byte {
	n := MaxEncodedLen(len(src))
	if n < 0 {
		panic(ErrTooLarge)
	}
	if len(dst) < n {
		dst = make([]byte, n)
	}
	return dst[:encodeBlock(dst, src)]
}

// encodeBlock writes the varint-encoded length prefix followed by the
// tag stream for src into dst, which must already be sized to at
// least MaxEncodedLen(len(src)), and returns the number of bytes
// written.
func encodeBlock(dst, src []byte) (d int) {
	d = varint.Encode(dst, uint32(len(src)))

	for len(src) > 0 {
		p := src
		src = nil
		if len(p) > maxFragmentSize {
			p, src = p[:maxFragmentSize], p[maxFragmentSize:]
		}
		if len(p) < minNonLiteralBlockSize {
			d += emitLiteral(dst[d:], p)
		} else {
			d += encodeFragment(dst[d:], p)
		}
	}
	return d
}

// minNonLiteralBlockSize is the smallest fragment the match search
// bothers with; anything shorter can never contain a length-4 match
// plus the trailing 15-byte look-ahead margin the search loop needs.
const minNonLiteralBlockSize = 4

// hashTableBits returns log2(size) for the smallest power-of-two hash
// table size in [256, 16384] that is at least as large as the
// fragment length n.
func hashTableBits(n int) uint {
	bits := uint(8) // 256 slots
	for (1 << bits) < n {
		bits++
	}
	if bits > 14 {
		bits = 14 // 16384 slots
	}
	return bits
}

// hash mixes the low 4 bytes of word with the block format's
// multiplicative constant, keeping only the top tableBits bits.
func hash(word uint32, tableBits uint) uint32 {
	return (word * 0x1e35a7bd) >> (32 - tableBits)
}

// encodeFragment compresses a fragment of length between
// minNonLiteralBlockSize and maxFragmentSize into dst and returns the
// number of bytes written, via a hash-driven match search with a skip
// heuristic for incompressible input.
//
// The skip variable tracks how many bytes have been scanned since the
// last match: dividing it by 32 gives the stride for the next probe,
// so incompressible input is scanned with a geometrically increasing
// stride while compressible input still gets probed at every position.
func encodeFragment(dst, src []byte) (d int) {
	n := len(src)
	if n < minNonLiteralBlockSize {
		return emitLiteral(dst, src)
	}

	tableBits := hashTableBits(n)
	var table [1 << 14]uint16 // fragment-local, zero-initialized; slot 0 means "empty"

	// sLimit is the last valid match-start position: the search needs
	// a 4-byte hash window plus enough trailing bytes that the match
	// extension and re-seeding logic below never read past n.
	sLimit := n - 15
	if sLimit < 0 {
		return emitLiteral(dst, src)
	}

	nextEmit := 0
	// There is nothing to match against position 0, so the search
	// starts at 1; position 0 of a fragment is therefore never
	// recorded in the hash table.
	s := 1

	for {
		skip := 32
		nextS := s
		var candidate int
		for {
			s = nextS
			bytesBetweenHashLookups := skip >> 5
			nextS = s + bytesBetweenHashLookups
			skip += bytesBetweenHashLookups
			if nextS > sLimit {
				goto emitRemainder
			}
			h := hash(load32(src, s), tableBits)
			candidate = int(table[h])
			table[h] = uint16(s)
			if candidate != 0 && load32(src, s) == load32(src, candidate) {
				break
			}
		}

		// A 4-byte match has been found at s against candidate. Emit
		// the pending literal, then extend and emit the match.
		d += emitLiteral(dst[d:], src[nextEmit:s])

		for {
			base := s
			offset := s - candidate
			s += 4
			c := candidate + 4
			for s < n && src[s] == src[c] {
				s++
				c++
			}
			d += emitCopy(dst[d:], offset, s-base)
			nextEmit = s
			if s >= sLimit {
				goto emitRemainder
			}

			// Seed the hash table at s-1 and check for an immediate
			// follow-on match at s. This and the per-probe insert
			// above are the only positions ever inserted; the search
			// never hashes every byte of a fragment.
			x := load64(src, s-1)
			prevHash := hash(uint32(x), tableBits)
			table[prevHash] = uint16(s - 1)
			currHash := hash(uint32(x>>8), tableBits)
			next := int(table[currHash])
			table[currHash] = uint16(s)
			if next == 0 || uint32(x>>8) != load32(src, next) {
				// s was just stored in the table; resume probing one
				// byte later so the next lookup cannot find s itself.
				s++
				break
			}
			candidate = next
		}
	}

emitRemainder:
	if nextEmit < n {
		d += emitLiteral(dst[d:], src[nextEmit:])
	}
	return d
}

// emitLiteral writes a literal chunk and returns the number of bytes
// written.
func emitLiteral(dst, lit []byte) int {
	if len(lit) == 0 {
		return 0
	}
	n := emitLiteralTag(dst, len(lit))
	return n + copy(dst[n:], lit)
}

// emitCopy writes one or more copy chunks for a copy of the given
// offset and length, and returns the number of bytes written.
//
// A fragment is at most 65536 bytes, so a match found within one
// fragment always has offset < 65536: this encoder never needs
// copy-4 (that tag exists so the decoder can accept blocks from other
// conforming encoders whose match history spans more than 64 KiB).
//
// Matches longer than 64 bytes are split into 64-byte copy-2 chunks,
// with an extra 60-byte chunk peeled off first when the remainder
// would otherwise land between 65 and 67 bytes, so that what's left
// can always be closed out by a single copy-1 or copy-2 tag. This
// mirrors the reference C++ encoder's chunking, though a conforming
// decoder accepts any legal sequence of chunks that sums to the same
// length.
func emitCopy(dst []byte, offset, length int) int {
	d := 0
	for length >= 68 {
		d += emitCopyTag(dst[d:], offset, 64)
		length -= 64
	}
	if length > 64 {
		d += emitCopyTag(dst[d:], offset, 60)
		length -= 60
	}
	d += emitCopyTag(dst[d:], offset, length)
	return d
}
