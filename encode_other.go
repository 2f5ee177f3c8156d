// Copyright 2016 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import "encoding/binary"

// load32 and load64 read little-endian words from arbitrary byte
// offsets. encoding/binary already assembles the word from individual
// byte loads on platforms without native unaligned access, so a
// single portable definition covers every target this package builds
// for; there is no architecture-specific fast path to fall back from.
func load32(b []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(b[i:])
}

func load64(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}
