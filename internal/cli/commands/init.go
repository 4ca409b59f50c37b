package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/presets"
)

func InitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config and an example preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			if config.Exists() && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			if err := config.DefaultConfig().Save(); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			dir, err := config.PresetsDir()
			if err != nil {
				return err
			}
			example := examplePreset()
			saved, err := presets.Save(dir, example)
			if err != nil {
				return fmt.Errorf("write example preset: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", saved)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return cmd
}

func examplePreset() *presets.Preset {
	rec := config.DefaultPreferences()
	rec.Goal = "Summarize"
	rec.Audience = "a busy executive"
	rec.Tone = "Concise"
	rec.FormatPreference = "Bulleted list"
	rec.LengthPreference = "Concise"
	rec.Structure = ""
	rec.Variables = nil
	return &presets.Preset{
		Name:          "executive-summary",
		Description:   "Short bulleted summaries for leadership",
		Configuration: rec,
	}
}
