// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"io"
	"os"
	"time"

	"github.com/MKhiriev/fm-portal/internal/client"
	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	baseURL    string
	user       string
	useTUI     bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "fmclient",
		Short:        "Request files from the FileMover service and follow their status",
		Version:      models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Version,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON config file")
	flags.StringVar(&opts.baseURL, "url", "", "FileMover service base URL")
	flags.StringVarP(&opts.user, "user", "u", "", "user name sent with every command")
	flags.BoolVar(&opts.useTUI, "tui", false, "follow requests in a terminal status view")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	cmd.AddCommand(
		newRequestCommand(opts),
		newStatusCommand(opts),
		newCancelCommand(opts),
		newRemoveCommand(opts),
	)

	return cmd
}

func newRequestCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "request <lfn>...",
		Short: "Submit retrieval requests and poll until they finish",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Request(cmd.Context(), args)
		},
	}
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "status <lfn>...",
		Short: "Poll the status of submitted requests until they finish",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Status(cmd.Context(), args, interval)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", config.DefaultInitialDelay, "starting poll interval, doubled after every pending answer")

	return cmd
}

func newCancelCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <lfn>",
		Short: "Cancel a retrieval request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Cancel(cmd.Context(), args[0])
		},
	}
}

func newRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <lfn>",
		Short: "Remove a finished request from the service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Remove(cmd.Context(), args[0])
		},
	}
}

// newApp wires the client from configuration. With --tui the status view
// owns the terminal, so region output and logs are silenced unless
// --verbose sends logs to stderr anyway.
func newApp(opts *rootOptions) (*client.App, error) {
	var logOut io.Writer = os.Stderr
	if opts.useTUI && !opts.verbose {
		logOut = io.Discard
	}
	log := logger.NewClientLogger("fmclient", logOut, opts.verbose)

	cfg, err := config.GetClientConfig(config.ClientOverrides{
		JSONFilePath: opts.configPath,
		BaseURL:      opts.baseURL,
		User:         opts.user,
	})
	if err != nil {
		return nil, err
	}

	dispatcher, err := dispatch.NewHTTPDispatcher(cfg.FileMover, dispatch.NewRegistry(cfg.FileMover.BasePath), log)
	if err != nil {
		return nil, err
	}

	var (
		region  poller.Region = client.NewTerminalRegion(os.Stdout)
		watcher client.Watcher
	)
	if opts.useTUI {
		region = poller.RegionFunc(func(string, string) {})
		watcher = client.NewTUIWatcher(tea.WithOutput(os.Stdout))
	} else {
		watcher = client.NewLogWatcher(log)
	}

	return client.NewApp(dispatcher, region, watcher, cfg.FileMover, log)
}
