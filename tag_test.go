// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralTagRoundTrip(t *testing.T) {
	for _, length := range []int{1, 2, 59, 60, 61, 256, 65536, 1 << 20, 1 << 28} {
		var buf [5]byte
		n := emitLiteralTag(buf[:], length)
		kind, gotLength, offset, gotN := decodeTag(buf[:n])
		require.Equal(t, kindLiteral, kind, "length %d", length)
		require.Equal(t, length, gotLength, "length %d", length)
		require.Equal(t, 0, offset, "length %d", length)
		require.Equal(t, n, gotN, "length %d", length)
	}
}

func TestCopyTagRoundTrip(t *testing.T) {
	cases := []struct {
		offset, length int
	}{
		{1, 4},
		{2047, 11},
		{8, 64},
		{2048, 12},
		{65535, 64},
		{70000, 10},
	}
	for _, tc := range cases {
		var buf [5]byte
		n := emitCopyTag(buf[:], tc.offset, tc.length)
		kind, gotLength, gotOffset, gotN := decodeTag(buf[:n])
		require.Equal(t, kindCopy, kind)
		require.Equal(t, tc.length, gotLength)
		require.Equal(t, tc.offset, gotOffset)
		require.Equal(t, n, gotN)
	}
}

func TestDecodeTagTruncated(t *testing.T) {
	// A copy-4 tag declares 4 follow-on bytes but none are present.
	kind, _, _, n := decodeTag([]byte{0x03})
	require.Zero(t, n)
	_ = kind

	// A long literal (x==63) declares 4 follow-on bytes.
	kind, _, _, n = decodeTag([]byte{63<<2 | tagLiteral, 0, 0})
	require.Zero(t, n)
	_ = kind

	// Empty input.
	_, _, _, n = decodeTag(nil)
	require.Zero(t, n)
}
