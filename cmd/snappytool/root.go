// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "snappytool",
	Short:         "Encode, decode, and inspect Snappy block-format data",
	SilenceUsage:  true,
	SilenceErrors: false,
}
