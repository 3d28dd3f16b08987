package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vpapic.dev/internal/config"
	"vpapic.dev/internal/logging"
)

var (
	cfg      *config.Config
	logLevel string
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		Long:          `portfolio serves the portfolio website and can browse the project catalog in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			return logging.Setup(cfg.LogLevel, cfg.LogFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewBrowseCommand())
	rootCmd.AddCommand(NewProjectsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
