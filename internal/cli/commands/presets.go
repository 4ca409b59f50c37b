package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/presets"
)

func PresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.PresetsDir()
			if err != nil {
				return err
			}
			idx, err := presets.NewIndex(dir)
			if err != nil {
				return err
			}
			if idx.Count() == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No presets in %s\n", dir)
				return nil
			}
			for _, p := range idx.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Name, p.Description)
			}
			return nil
		},
	}
}
