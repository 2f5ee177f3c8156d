// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package golden holds a small table of named uncompressed inputs used
// across the test suite and as fuzz seeds. It is the Go-native
// equivalent of the corpus that original_source/generate_test_data.cpp
// produces on the C++ side: a fixed set of shapes (empty, tiny,
// highly repetitive, byte-diverse, mixed literal/copy) known to exercise
// distinct paths through the encoder and decoder.
package golden

import "strings"

// Case is one named uncompressed input.
type Case struct {
	Name string
	Data []byte
}

// Cases is the golden corpus. Apart from one 70000-byte case that spans
// two fragments, it excludes inputs sized at the 64 KiB fragment
// boundary and anything near the 2^32-1 format limit; those are
// generated separately by tests that need to control their exact size.
var Cases = []Case{
	{"empty", nil},
	{"one byte", []byte("A")},
	{"short literal", []byte("hello, world")},
	{"repeated short run", []byte(strings.Repeat("a", 100))},
	{"repeated block", []byte(strings.Repeat("abcdefgh", 20))},
	{"repeated sentence", []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 4))},
	{"byte ramp", byteRamp()},
	{"mixed literal and copy", mixedLiteralAndCopy()},
	{"single repeated byte, long", []byte(strings.Repeat("z", 70000))},
	{"overlapping run", []byte(strings.Repeat("ab", 40))},
}

// byteRamp returns the 256 bytes [0, 256), which has no run of 4 or
// more repeated bytes and so should not compress at all beyond tag
// overhead.
func byteRamp() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// mixedLiteralAndCopy interleaves literal-only stretches with a run
// that should trigger a back-reference, to exercise the boundary
// between the two tag kinds within a single fragment.
func mixedLiteralAndCopy() []byte {
	var b []byte
	b = append(b, []byte("the beginning of the story, told plainly, ")...)
	b = append(b, []byte("was that the beginning of the story ")...)
	b = append(b, []byte("was not what anyone remembered.")...)
	return b
}
