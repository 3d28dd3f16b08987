package commands

import (
	"github.com/spf13/cobra"

	"vpapic.dev/internal/services"
	"vpapic.dev/internal/tui"
)

// NewBrowseCommand creates the browse command
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the projects and their screenshots in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cfg.Site.Profile.Name, services.NewProjectService(cfg.Catalog))
		},
	}
}
