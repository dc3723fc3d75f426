package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of declaration snapshots",
		Long: `Print the JSON Schema that declaration snapshots follow.

Hosts that export snapshots and editors that validate them can use the
schema directly. YAML snapshots follow the same structure.`,
		Example: `  # Print to stdout
  smartgen schema

  # Write to a file
  smartgen schema --out snapshot.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(syntax.JSONSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			data = append(data, '\n')
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0600); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Write the schema to this file instead of stdout")
	return cmd
}
