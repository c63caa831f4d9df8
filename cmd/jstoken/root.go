package main

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jstoken",
		Short:        "jstoken",
		SilenceUsage: true,
		Long:         `CLI tool that runs the ECMAScript lexical scanner over a source file and dumps the resulting token stream. Scan options are read from jstoken.yaml when present, or from the file named by --config.`,
	}

	configFile string
	verbose    bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a jstoken.yaml config file (default: ./jstoken.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scan statistics and diagnostics details")
	return rootCmd.Execute()
}
