// Package main is the entry point for lgm, an interactive Pulsar
// resource browser.
//
// lgm provides a terminal-based user interface for exploring a Pulsar
// cluster's tenants, namespaces, topics and subscriptions, with
// subscription management (delete, skip backlog, seek) built in.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bloznelis/lgm/configs"
	"github.com/bloznelis/lgm/internal/adapters/pulsaradmin"
	"github.com/bloznelis/lgm/internal/adapters/tui"
	"github.com/bloznelis/lgm/internal/logging"
)

// version is the current version of lgm.
const version = "0.1.0"

func main() {
	var (
		configPath string
		adminURL   string
		tenant     string
		logFile    string
		trace      bool
	)

	root := &cobra.Command{
		Use:     "lgm",
		Short:   "Interactive terminal browser for Apache Pulsar",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				var err error
				if path, err = configs.DefaultPath(); err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
			}
			cfg, err := configs.LoadFrom(path)
			if err != nil {
				return err
			}
			if adminURL != "" {
				cfg.AdminURL = adminURL
			}
			if tenant != "" {
				cfg.DefaultTenant = tenant
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}
			if trace {
				cfg.Trace = true
			}

			if err := logging.Configure(cfg.LogFile, cfg.Trace); err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logging.Close()

			admin := pulsaradmin.NewClient(cfg)
			model := tui.New(admin, cfg)

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run ui: %w", err)
			}

			// Remember the tenant for the next session. Only the last
			// tenant is written back, and to the same file the config
			// was read from; flag overrides stay one-shot.
			if err := configs.SaveLastTenant(path, cfg.LastTenant); err != nil {
				logging.Error(err)
			}
			return nil
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (default ~/.config/lgm/config.yaml)")
	root.Flags().StringVarP(&adminURL, "url", "u", "", "Pulsar admin API base URL")
	root.Flags().StringVarP(&tenant, "tenant", "t", "", "tenant to preselect on startup")
	root.Flags().StringVar(&logFile, "log-file", "", "path to the log file")
	root.Flags().BoolVar(&trace, "trace", false, "enable trace logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
