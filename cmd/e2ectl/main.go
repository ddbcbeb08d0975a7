// e2ectl is the suite's operational tool: install browser drivers,
// validate the environment, and inspect the resolved configuration
// before spending minutes on a full test run.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	root := &cobra.Command{
		Use:           "e2ectl",
		Short:         "Operational tool for the storefront E2E suite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(installCmd(log), checkCmd(log), configCmd())

	if err := root.Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func installCmd(log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the Playwright driver and the configured browser engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log.Info("installing browser driver", zap.String("browser", cfg.Browser))
			if err := playwright.Install(&playwright.RunOptions{
				Browsers: []string{cfg.Browser},
			}); err != nil {
				return fmt.Errorf("install playwright: %w", err)
			}
			log.Info("driver installed")
			return nil
		},
	}
}

func checkCmd(log *zap.Logger) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and probe the storefront and its API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log.Info("configuration valid",
				zap.String("base_url", cfg.BaseURL),
				zap.String("api_url", cfg.APIURL),
				zap.String("browser", cfg.Browser),
				zap.Bool("admin_credentials", cfg.HasAdminCredentials()),
			)

			if err := config.CheckReachable(cfg.BaseURL, timeout, "/auth/login", "/"); err != nil {
				return fmt.Errorf("storefront unreachable: %w", err)
			}
			log.Info("storefront reachable", zap.String("url", cfg.BaseURL))

			if err := config.CheckReachable(cfg.APIURL, timeout, "/status", "/"); err != nil {
				return fmt.Errorf("api unreachable: %w", err)
			}
			log.Info("api reachable", zap.String("url", cfg.APIURL))

			if !cfg.HasAdminCredentials() {
				log.Warn("admin credentials not set; admin-mediated tests will fail setup",
					zap.String("hint", "set E2E_ADMIN_EMAIL and E2E_ADMIN_PASSWORD"))
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "probe timeout per request")
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(cfg.Redacted(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
