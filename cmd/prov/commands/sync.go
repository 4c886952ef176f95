package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/prov/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch pinned snapshots and write the environment manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			_, err := c.components.App.Sync(cmd.Context(), app.SyncOptions{
				Cwd:          ".",
				ManifestPath: output,
			})
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "", "Manifest destination path (default .prov/prov.manifest.json)")
	return cmd
}
