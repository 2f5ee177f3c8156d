// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/peckdistillate329/snappy-go"
)

// newTestRoot builds a fresh root command around the package-level
// subcommands so each test sets its own stdin/stdout/stderr and
// arguments, rather than reusing the package-level rootCmd.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "snappytool",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(encodeCmd, decodeCmd, inspectCmd)
	return root
}

func run(t *testing.T, in []byte, args ...string) (stdout string, err error) {
	t.Helper()
	root := newTestRoot()
	var out bytes.Buffer
	root.SetIn(bytes.NewReader(in))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestCLIEncodeDecodeRoundTrip(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")

	encoded, err := run(t, src, "encode")
	require.NoError(t, err)

	decoded, err := run(t, []byte(encoded), "decode")
	require.NoError(t, err)
	require.Equal(t, string(src), decoded)
}

func TestCLIEncodeEmptyInput(t *testing.T) {
	out, err := run(t, nil, "encode")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, []byte(out))
}

func TestCLIDecodeRejectsCorruptInput(t *testing.T) {
	_, err := run(t, []byte{0x05, 0xff, 0xff}, "decode")
	require.Error(t, err)
}

func TestCLIInspectReportsValidBlock(t *testing.T) {
	src := []byte("mississippi mississippi mississippi")
	encoded := snappy.Encode(nil, src)

	out, err := run(t, encoded, "inspect")
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "valid: declared length 35"))
}

func TestCLIInspectRejectsCorruptBlock(t *testing.T) {
	_, err := run(t, []byte{0x03, 0xf0}, "inspect")
	require.Error(t, err)
}
