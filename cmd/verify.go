/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/moamenhredeen/contentapi/internal/parser"
	"github.com/moamenhredeen/contentapi/internal/registry"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [openapi-spec-file]",
	Short: "Check that every operation route is described by an OpenAPI document",
	Long: `Parse an OpenAPI description of the content API and report every registered
route without a matching GET path. Paths may be written with or without the
` + registry.APIPrefix + ` prefix; placeholder names do not need to match.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := parser.ParseFile(args[0])
		if err != nil {
			fail("parsing OpenAPI file: %v", err)
		}

		missing := 0
		for _, a := range newAdapters() {
			findings, err := p.VerifyRoutes(a.Operations(), registry.APIPrefix)
			if err != nil {
				fail("verifying routes: %v", err)
			}

			for _, f := range findings {
				if f.Found {
					if verbose {
						fmt.Printf("%s %-26s %s -> %s\n", green("✓"), f.Operation, f.Template, f.Matched)
					}
					continue
				}
				missing++
				fmt.Printf("%s %-26s %s\n", red("✗"), f.Operation, f.Template)
			}
		}

		if missing > 0 {
			fmt.Fprintf(os.Stderr, "\n%d route(s) not described by %s\n", missing, args[0])
			os.Exit(1)
		}
		fmt.Println(green("All routes are described by the document"))
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show matched routes too")
}
