package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the dependency closure without writing a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := c.components.App.Resolve(cmd.Context(), ".")
			if err != nil {
				return err
			}
			for _, pkg := range env.Packages {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pkg.ID(), pkg.ContentHash)
			}
			return nil
		},
	}
}
