package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title EpiDash API
// @version 1.0
// @description Epidemiological dashboard backend: filtered, aggregated case records from mock and PostgreSQL sources.
// @BasePath /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "epidash",
		Short:         "EpiDash epidemiological dashboard service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./config.yaml, ./config/config.yaml, /etc/epidash/config.yaml)")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newSeedCmd(&configPath))
	return root
}
