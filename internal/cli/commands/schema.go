package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

func SchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <field...>",
		Short: "Print the JSON schema for a list of field names",
		Long:  "Print the JSON schema for a list of field names. Fields may be separate arguments or comma separated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := prompts.ParseFields(strings.Join(args, ","))
			fmt.Fprintln(cmd.OutOrStdout(), prompts.GenerateSchema(fields))
			return nil
		},
	}
}
