package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/schema"
)

// NewSchemaCmd creates the `schema` command
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for hook configuration files",
		Long: `Outputs the embedded JSON Schema describing hook configuration documents.
Useful for editor integration (yaml-language-server) and external validators.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(string(schema.EmbeddedSchema()))
			return nil
		},
	}
}
