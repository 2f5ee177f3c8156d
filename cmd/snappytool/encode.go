// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/peckdistillate329/snappy-go"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Compress stdin to a Snappy block on stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(snappy.Encode(nil, src))
		return err
	},
}
