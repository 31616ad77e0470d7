// Copyright (C) 2025 The jval Authors. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parsekit/jval/ast"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var checkPath string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse a JSON file and report the first error, if any",
		Long: `Parse a JSON file and print a summary of its root value.

If no file is provided, input is read from stdin. The exit status is
non-zero if the input does not begin with a valid JSON value, and the
error names the byte span of the offending input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := ast.ParseValue(string(source))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if checkPath != "" {
				v, err = resolvePath(v, checkPath)
				if err != nil {
					return fmt.Errorf("%s: path %q: %w", name, checkPath, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, describe(v))
			return nil
		},
	}
	cmd.Flags().StringVar(&checkPath, "path", "", "Report the value at this dotted path instead of the root")
	return cmd
}

// readInput reads the named file, or stdin when no argument was given.
func readInput(args []string) (data []byte, name string, err error) {
	if len(args) == 0 {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err = os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return data, args[0], nil
}

// resolvePath splits a dotted path like "records.1.name" into ast.Path
// elements, treating runs of digits as array indices.
func resolvePath(v ast.Value, path string) (ast.Value, error) {
	var elts []any
	for _, part := range strings.Split(path, ".") {
		if i, err := strconv.Atoi(part); err == nil {
			elts = append(elts, i)
		} else {
			elts = append(elts, part)
		}
	}
	return ast.Path(v, elts...)
}

func describe(v ast.Value) string {
	switch t := v.(type) {
	case ast.Null:
		return "null"
	case ast.Bool:
		return fmt.Sprintf("bool %v", bool(t))
	case ast.Number:
		return fmt.Sprintf("number %v", float64(t))
	case ast.String:
		return "string " + string(t)
	case ast.Array:
		return fmt.Sprintf("array of %d values", len(t))
	case ast.Object:
		return fmt.Sprintf("object with %d members", len(t))
	}
	return fmt.Sprintf("%T", v)
}
