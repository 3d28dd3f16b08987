package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vpapic.dev/internal/services"
)

var projectsJSON bool

// NewProjectsCommand creates the projects command
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects [slug]",
		Short: "List the project catalog, or show one project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProjects,
	}
	cmd.Flags().BoolVar(&projectsJSON, "json", false, "Print JSON")
	return cmd
}

func runProjects(cmd *cobra.Command, args []string) error {
	ps := services.NewProjectService(cfg.Catalog)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		p, err := ps.GetBySlug(args[0])
		if err != nil {
			return err
		}
		if projectsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}
		fmt.Fprintf(out, "%s (%s)\n%s\n", p.Title, p.Slug, p.FullDescription)
		fmt.Fprintf(out, "Tags:   %s\n", strings.Join(p.Tags, ", "))
		fmt.Fprintf(out, "Images: %d\n", len(p.Images))
		if u, ok := p.GitHubURL(); ok {
			fmt.Fprintf(out, "Source: %s\n", u)
		}
		if u, ok := p.LiveURL(); ok {
			fmt.Fprintf(out, "Live:   %s\n", u)
		}
		return nil
	}

	summaries := ps.Summaries()
	if projectsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}
	for i, s := range summaries {
		fmt.Fprintf(out, "%d. %-10s %s\n", i+1, s.Slug, s.Description)
	}
	return nil
}
