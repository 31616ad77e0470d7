// Copyright (C) 2025 The jval Authors. All Rights Reserved.

// Program jval checks JSON files with the parsekit/jval parser, reporting
// the first lexical or structural error with its byte span.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "jval",
		Short:        "Check and tokenize JSON files",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newScanCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
