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
	"time"

	"github.com/moamenhredeen/contentapi/internal/checker"
	"github.com/moamenhredeen/contentapi/internal/models"
	"github.com/moamenhredeen/contentapi/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	checkOutputFormat string
	checkOutputFile   string
	verbose           bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [plan-file]",
	Short: "Run a plan of calls and report which returned the expected status",
	Long: `Run every call of a YAML plan and report pass/fail per call.

Example plan:
  defaults:
    base_url: https://example.com
  calls:
    - name: start page
      adapter: content
      operation: get-content-by-reference
      params: {contentReference: "5", expand: "*"}
    - name: missing page
      adapter: content
      operation: get-content-by-reference
      params: {contentReference: "999999"}
      expect_status: 404`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := checker.LoadPlan(args[0])
		if err != nil {
			fail("%v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c := checker.New(newAdapters(), checker.Config{
			Concurrency: cfg.Check.Concurrency,
			Rate:        cfg.Check.Rate,
			Fallback: checker.Target{
				BaseURL:     cfg.BaseURL,
				AccessToken: cfg.AccessToken,
				Locale:      cfg.Locale,
			},
		}, logger)

		onEvent := func(event checker.CheckEvent) {
			if event.Type != checker.EventCompleted || (checkOutputFormat != "" && checkOutputFile == "") {
				return
			}
			r := event.Result
			status := green("PASS")
			if !r.Passed {
				status = red("FAIL")
			}
			fmt.Printf("[%d/%d] %s %s", event.Index+1, event.Total, status, r.Name)
			if !r.Passed && r.Error != "" {
				fmt.Printf(" - %s", r.Error)
			}
			fmt.Println()
		}

		summary, err := c.Run(ctx, plan, onEvent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nCheck interrupted: %v\n", err)
		}

		if checkOutputFormat != "" {
			format, err := output.ParseFormat(checkOutputFormat)
			if err != nil {
				fail("%v", err)
			}
			if err := output.ExportCheckSummary(summary, format, checkOutputFile); err != nil {
				fail("exporting results: %v", err)
			}
			if checkOutputFile == "" {
				exitOnFailures(summary)
				return
			}
			fmt.Printf("\nResults exported to: %s\n", checkOutputFile)
		}

		displayResults(summary, verbose)
		exitOnFailures(summary)
	},
}

func displayResults(summary models.CheckSummary, verbose bool) {
	fmt.Printf("\n%s\n", white("=== Check Results ==="))
	fmt.Printf("Total Checks: %d\n", summary.TotalChecks)
	fmt.Printf("Passed: %s\n", green(summary.Passed))
	if summary.Failed > 0 {
		fmt.Printf("Failed: %s\n", red(summary.Failed))
	} else {
		fmt.Printf("Failed: %d\n", summary.Failed)
	}
	fmt.Printf("Duration: %v\n", summary.TotalDuration.Round(time.Millisecond))
	fmt.Println()

	if !verbose {
		return
	}

	for _, result := range summary.Results {
		status := green("✓ PASS")
		if !result.Passed {
			status = red("✗ FAIL")
		}

		fmt.Printf("%s %s\n", status, result.Name)
		fmt.Printf("  Adapter: %s", result.Adapter)
		if result.Operation != "" {
			fmt.Printf(" / %s", result.Operation)
		}
		fmt.Println()
		if result.URL != "" {
			fmt.Printf("  URL: %s\n", result.URL)
		}
		fmt.Printf("  Status Code: %d\n", result.StatusCode)
		fmt.Printf("  Response Time: %v\n", result.ResponseTime)
		if !result.Passed && result.Error != "" {
			fmt.Printf("  Error: %s\n", result.Error)
		}
		fmt.Println()
	}
}

// Exit with error code if any checks failed
func exitOnFailures(summary models.CheckSummary) {
	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntP("concurrency", "c", 0, "calls in flight at once (default from config: 4)")
	checkCmd.Flags().Float64P("rate", "r", 0, "max calls per second (0 = unlimited)")
	checkCmd.Flags().StringVarP(&checkOutputFormat, "output", "o", "", "Output format: json, csv")
	checkCmd.Flags().StringVar(&checkOutputFile, "output-file", "", "Write output to file (default: stdout)")
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")

	_ = viper.BindPFlag("check.concurrency", checkCmd.Flags().Lookup("concurrency"))
	_ = viper.BindPFlag("check.rate", checkCmd.Flags().Lookup("rate"))
}
