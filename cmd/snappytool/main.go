// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command snappytool is a thin, block-format-only front end over the
// snappy package: encode stdin, decode stdin, or inspect a compressed
// block without decoding it. It is an external adapter, not part of
// the core codec.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
