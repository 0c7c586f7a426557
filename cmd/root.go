/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/moamenhredeen/contentapi/internal/adapters"
	"github.com/moamenhredeen/contentapi/internal/client"
	"github.com/moamenhredeen/contentapi/internal/config"
	"github.com/moamenhredeen/contentapi/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time with -ldflags "-X .../cmd.version=..."
var version = "dev"

var (
	cfgFile string
	envFile string

	cfg    *config.Config
	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contentapi",
	Short: "Read-only client for the Optimizely content delivery API",
	Long: `contentapi calls the read-only endpoints of an Optimizely (Episerver) content
delivery and content definitions API and prints a normalized JSON envelope.

Connection settings come from flags, CONTENTAPI_* environment variables, a .env
file or contentapi.toml in the working directory or ~/.config/contentapi.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initConfig() },
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig() error {
	loaded, err := config.Load(viper.GetViper(), config.Options{
		ConfigFile: cfgFile,
		EnvFile:    envFile,
	})
	if err != nil {
		return err
	}
	cfg = loaded
	logger = logging.Stderr(cfg.Log.Level, cfg.Log.Format)
	logger.Debug().Str("config", viper.ConfigFileUsed()).Msg("configuration loaded")
	return nil
}

func newAdapters() []*adapters.Adapter {
	exec := client.NewHTTPExecutor(&http.Client{Timeout: cfg.Timeout})
	return adapters.All(exec, logger)
}

func connectionDefaults() adapters.Defaults {
	return adapters.Defaults{
		BaseURL:     cfg.BaseURL,
		AccessToken: cfg.AccessToken,
		Locale:      cfg.Locale,
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./contentapi.toml)")
	pf.StringVar(&envFile, "env-file", "", "env file (default: ./.env when present)")
	pf.String("base-url", "", "origin of the content API, e.g. https://example.com")
	pf.String("token", "", "bearer token")
	pf.String("locale", "", "language sent as Accept-Language")
	pf.Duration("timeout", 0, "HTTP client timeout (0 = none)")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "", "log format: console, json")

	for key, flag := range map[string]string{
		"base_url":     "base-url",
		"access_token": "token",
		"locale":       "locale",
		"timeout":      "timeout",
		"log.level":    "log-level",
		"log.format":   "log-format",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}
