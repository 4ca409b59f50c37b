package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

func AdviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise [task...]",
		Short: "Explain what rendering would add to a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, note := range prompts.Analyze(strings.Join(args, " ")) {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", note)
			}
			return nil
		},
	}
}
