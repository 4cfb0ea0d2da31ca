// Package main provides the CLI entrypoint for stringly-gen.
//
// stringly-gen reproduces, at build time, what a derive macro would do:
// it parses Go packages (go/packages + go/types), plans one accessor
// implementation per struct, and emits the delegation code that lets
// dotted run-time paths address nested struct fields.
package main

import (
	"os"

	"github.com/bdlm/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stringly-gen",
	Short: "Generate path accessor implementations for Go structs",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(log.InfoLevel)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
