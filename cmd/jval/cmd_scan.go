// Copyright (C) 2025 The jval Authors. All Rights Reserved.

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/parsekit/jval"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Print the lexical tokens of a JSON file",
		Long: `Print one line per lexical token: its byte span, kind, and lexeme.

If no file is provided, input is read from stdin. The exit status is
non-zero if the input contains text that matches no token.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readInput(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			s := jval.NewScanner(bytes.NewReader(source))
			for {
				if err := s.Next(); err == io.EOF {
					return nil
				} else if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				span := s.Span()
				fmt.Fprintf(w, "%d..%d\t%v\t%s\n", span.Pos, span.End, s.Token(), s.Text())
			}
		},
	}
	return cmd
}
