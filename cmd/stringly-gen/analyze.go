package main

import (
	"fmt"
	"sort"

	"github.com/bdlm/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/Michael-F-Bryan/stringly-typed/internal/analyze"
	"github.com/Michael-F-Bryan/stringly-typed/options"
)

var (
	analyzeDump     bool
	analyzeKeyStyle string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [packages...]",
	Short: "List every dotted path the given packages' structs expose",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := options.ParseKeyStyle(analyzeKeyStyle)
		if err != nil {
			return err
		}

		graph, err := analyze.NewAnalyzer().LoadPackages(args...)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"packages": len(graph.Packages), "structs": len(graph.Structs)}).
			Debug("loaded type graph")

		if analyzeDump {
			spew.Fdump(cmd.OutOrStdout(), graph)

			return nil
		}

		pkgPaths := make([]string, 0, len(graph.Packages))
		for path := range graph.Packages {
			pkgPaths = append(pkgPaths, path)
		}
		sort.Strings(pkgPaths)

		for _, path := range pkgPaths {
			for _, id := range graph.Packages[path].Structs {
				for _, entry := range analyze.FieldPaths(graph, id, style) {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", entry.Tag, entry.Path)
				}
			}
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeDump, "dump", false, "dump the raw type graph instead of paths")
	analyzeCmd.Flags().StringVar(&analyzeKeyStyle, "key-style", "snake", "key naming style: snake, lowerCamel or verbatim")
	rootCmd.AddCommand(analyzeCmd)
}
