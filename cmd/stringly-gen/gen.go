package main

import (
	"fmt"

	"github.com/bdlm/log"
	"github.com/spf13/cobra"

	"github.com/Michael-F-Bryan/stringly-typed/internal/analyze"
	"github.com/Michael-F-Bryan/stringly-typed/internal/gen"
	"github.com/Michael-F-Bryan/stringly-typed/internal/manifest"
	"github.com/Michael-F-Bryan/stringly-typed/internal/plan"
)

var (
	genManifest string
	genDryRun   bool
	genKeyStyle string
)

var genCmd = &cobra.Command{
	Use:   "gen [packages...]",
	Short: "Generate accessor implementations for the selected structs",
	Long: `Generate accessor implementations for the selected structs.

With --manifest, the YAML file drives what is generated and package
arguments are not allowed. Without it, accessors are generated for every
named struct in the given packages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := resolveManifest(args)
		if err != nil {
			return err
		}

		graph, err := analyze.NewAnalyzer().LoadPackages(m.Patterns()...)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"packages": len(graph.Packages), "structs": len(graph.Structs)}).
			Debug("loaded type graph")

		p, err := plan.NewResolver(graph, m).Resolve()
		if err != nil {
			return err
		}

		for _, diag := range p.Diagnostics.All() {
			fmt.Fprintln(cmd.ErrOrStderr(), diag)
		}
		if p.Diagnostics.HasErrors() {
			return fmt.Errorf("plan has %d errors", len(p.Diagnostics.Errors))
		}

		files, err := gen.Generate(p)
		if err != nil {
			return err
		}

		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", f.Path(), len(f.Content))
		}

		if genDryRun {
			log.Debug("dry run, nothing written")

			return nil
		}

		return gen.WriteFiles(files)
	},
}

func resolveManifest(args []string) (*manifest.Manifest, error) {
	if genManifest != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--manifest and package arguments are mutually exclusive")
		}

		return manifest.LoadFile(genManifest)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("nothing to generate: pass package patterns or --manifest")
	}

	m := manifest.Default(args...)
	m.KeyStyle = genKeyStyle

	if _, err := m.Style(); err != nil {
		return nil, err
	}

	return m, nil
}

func init() {
	genCmd.Flags().StringVar(&genManifest, "manifest", "", "YAML manifest describing what to generate")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "plan and render, but write nothing")
	genCmd.Flags().StringVar(&genKeyStyle, "key-style", "snake", "key naming style: snake, lowerCamel or verbatim")
	rootCmd.AddCommand(genCmd)
}
