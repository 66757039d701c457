package commands

import (
	"github.com/spf13/cobra"

	"github.com/adriyanbasu0/zr-sharp/internal/cli/output"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display zr version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := RendererFrom(cmd.Context())
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(map[string]string{
					"version":    version,
					"build_date": buildDate,
					"git_commit": gitCommit,
				})
			}
			r.Printf("zr v%s\n", version)
			r.Printf("Build date: %s\n", buildDate)
			r.Printf("Git commit: %s\n", gitCommit)
			return nil
		},
	}
}
