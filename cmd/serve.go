/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/moamenhredeen/contentapi/internal/mcpserver"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the adapters as MCP tools over stdio",
	Long: `Serve the adapters as Model Context Protocol tools over stdin/stdout.

Tool arguments override the configured base URL, token and locale.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := mcpserver.New(newAdapters(), mcpserver.Options{
			Name:     "contentapi",
			Version:  version,
			Defaults: connectionDefaults(),
		}, logger)

		logger.Info().Msg("serving MCP tools on stdio")
		return mcpserver.Serve(ctx, server)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
