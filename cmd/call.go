/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/moamenhredeen/contentapi/internal/adapters"
	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/moamenhredeen/contentapi/internal/output"
	"github.com/moamenhredeen/contentapi/internal/registry"
	"github.com/spf13/cobra"
)

var (
	callParams map[string]string
	callDryRun bool
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <adapter> [operation]",
	Short: "Call one adapter and print the response envelope",
	Long: `Call one adapter and print the normalized response envelope as JSON.

Adapters: content (multi-operation), export-manifest, list-content-types.
Run "contentapi operations" to list the operations of the content adapter.

Exit status is 0 when the backend answered with 2xx, 2 when it answered with
any other status and 1 when the call could not be made.

Examples:
  contentapi call content get-content-by-reference -p contentReference=5
  contentapi call content get-children -p contentGuid=abc-123 -p top=10
  contentapi call list-content-types -p includeSystemTypes=true --token $TOKEN`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runCall,
}

func runCall(cmd *cobra.Command, args []string) {
	adapter, ok := adapters.Find(newAdapters(), args[0])
	if !ok {
		fail("unknown adapter: %s", args[0])
	}

	req := adapters.Request{Params: registry.Params(callParams)}
	if req.Params == nil {
		req.Params = registry.Params{}
	}
	if len(args) > 1 {
		req.Operation = args[1]
	}
	req = req.WithDefaults(connectionDefaults())

	if callDryRun {
		u, err := adapter.Resolve(req)
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(u)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopSpinner := startSpinner(fmt.Sprintf("%s %s", adapter.Name(), req.Operation))
	env, err := adapter.Call(ctx, req)
	stopSpinner()

	if err != nil {
		logger.Debug().Str("kind", client.Classify(env, err).String()).Msg("call failed")
		fail("%v", err)
	}

	if isTTY {
		status := green(fmt.Sprintf("%d %s", env.Status, env.StatusText))
		if !env.Success {
			status = red(fmt.Sprintf("%d %s", env.Status, env.StatusText))
		}
		fmt.Fprintf(os.Stderr, "%s %s\n", status, env.URL)
	}

	if err := output.WriteEnvelope(os.Stdout, env); err != nil {
		fail("writing envelope: %v", err)
	}

	if !env.Success {
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().StringToStringVarP(&callParams, "param", "p", nil, "operation parameter as name=value (repeatable)")
	callCmd.Flags().BoolVar(&callDryRun, "dry-run", false, "print the request URL without sending it")
}
