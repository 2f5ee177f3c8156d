// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/peckdistillate329/snappy-go"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// inspectCmd is the Go-native equivalent of the reference
// implementation's standalone validate_snappy driver: it reports
// whether stdin is a valid Snappy block and, if so, its declared
// uncompressed length, without ever materializing the decoded bytes.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report whether stdin is a valid Snappy block, and its declared length",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		n, lenErr := snappy.DecodedLen(src)
		if lenErr != nil {
			return fmt.Errorf("invalid: malformed length prefix: %w", lenErr)
		}
		if !snappy.IsValidBlock(src) {
			return fmt.Errorf("invalid: declared length %d, corrupt tag stream", n)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "valid: declared length %d\n", n)
		return nil
	},
}
