/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/moamenhredeen/contentapi/internal/models"
	"github.com/moamenhredeen/contentapi/internal/registry"
	"github.com/spf13/cobra"
)

// operationsCmd represents the operations command
var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List adapters and their operations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range newAdapters() {
			token := "optional"
			if a.TokenRequired() {
				token = "required"
			}
			fmt.Printf("%s (token %s)\n", white(a.Name()), token)
			fmt.Printf("  %s\n", a.Description())

			for _, op := range a.Operations() {
				fmt.Printf("  %s\n", yellow(op.ID))
				for _, r := range op.Routes {
					fmt.Printf("      GET %s%s\n", registry.APIPrefix, r.PathTemplate)
				}
				if q := queryKeys(op.Query, a.CommonQuery()); q != "" {
					fmt.Printf("      query: %s\n", q)
				}
			}
			fmt.Println()
		}
	},
}

func queryKeys(groups ...[]models.QueryParam) string {
	var keys []string
	for _, g := range groups {
		for _, q := range g {
			keys = append(keys, q.Key)
		}
	}
	return strings.Join(keys, ", ")
}

func init() {
	rootCmd.AddCommand(operationsCmd)
}
