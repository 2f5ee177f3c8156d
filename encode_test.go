// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/peckdistillate329/snappy-go/internal/golden"
)

func TestGoldenRoundTrip(t *testing.T) {
	for _, c := range golden.Cases {
		t.Run(c.Name, func(t *testing.T) {
			encoded := Encode(nil, c.Data)

			// The encoded form must never exceed the declared size bound.
			require.LessOrEqual(t, len(encoded), MaxEncodedLen(len(c.Data)))

			// DecodedLen must report the true uncompressed length
			// without decoding anything.
			n, err := DecodedLen(encoded)
			require.NoError(t, err)
			require.Equal(t, len(c.Data), n)

			require.True(t, IsValidBlock(encoded))

			decoded, err := Decode(nil, encoded)
			require.NoError(t, err)
			// Decoding an encoder's own output must reproduce the
			// original bytes exactly.
			require.True(t, bytes.Equal(c.Data, decoded))
		})
	}
}

func TestEncodeDecodeQuickCheck(t *testing.T) {
	f := func(b []byte) bool {
		encoded := Encode(nil, b)
		if len(encoded) > MaxEncodedLen(len(b)) {
			return false
		}
		n, err := DecodedLen(encoded)
		if err != nil || n != len(b) {
			return false
		}
		if !IsValidBlock(encoded) {
			return false
		}
		decoded, err := Decode(nil, encoded)
		if err != nil {
			return false
		}
		return bytes.Equal(b, decoded)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestEncodeSpansMultipleFragments(t *testing.T) {
	// Exercise the compressor driver's fragment split: an input larger
	// than one 64 KiB fragment.
	src := make([]byte, 3*maxFragmentSize+12345)
	for i := range src {
		src[i] = byte(i * 2654435761 >> 16)
	}
	encoded := Encode(nil, src)
	require.LessOrEqual(t, len(encoded), MaxEncodedLen(len(src)))

	decoded, err := Decode(nil, encoded)
	require.NoError(t, err)
	require.True(t, bytes.Equal(src, decoded))
}

func TestEncodeExactFragmentBoundary(t *testing.T) {
	for _, n := range []int{maxFragmentSize - 1, maxFragmentSize, maxFragmentSize + 1, 2 * maxFragmentSize} {
		src := bytes.Repeat([]byte{'x', 'y'}, n/2+1)[:n]
		encoded := Encode(nil, src)
		decoded, err := Decode(nil, encoded)
		require.NoError(t, err, "n=%d", n)
		require.True(t, bytes.Equal(src, decoded), "n=%d", n)
	}
}

func TestEncodeBlockRejectsUndersizedBuffer(t *testing.T) {
	src := []byte("hello, world")
	_, err := EncodeBlock(make([]byte, 1), src, LevelFast)
	require.ErrorIs(t, err, ErrInsufficientBuffer)
}

func TestEncodeBetterLevelIsFormatCompliant(t *testing.T) {
	// LevelBetter is reserved and may behave identically to LevelFast,
	// but its output must still round-trip.
	src := []byte(bytes.Repeat([]byte("mississippi"), 50))
	dst := make([]byte, MaxEncodedLen(len(src)))
	n, err := EncodeBlock(dst, src, LevelBetter)
	require.NoError(t, err)

	decoded, err := Decode(nil, dst[:n])
	require.NoError(t, err)
	require.True(t, bytes.Equal(src, decoded))
}
