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
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decompress a Snappy block on stdin to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		dst, err := snappy.Decode(nil, src)
		if err != nil {
			return fmt.Errorf("snappytool: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(dst)
		return err
	},
}
