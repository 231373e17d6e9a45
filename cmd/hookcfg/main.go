package main

import (
	"os"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/cmd"
	"github.com/grovetools/hookcfg/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hookcfg",
		"Load, validate, and inspect pre-commit hook configurations",
	)
	cli.SetVersion(rootCmd, version.GetInfo())

	// Add subcommands
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewHooksCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewWatchCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
