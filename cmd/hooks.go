package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/registry"
)

// NewHooksCmd creates the `hooks` command
func NewHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List the hooks declared in the configuration, in document order",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			path, err := cli.InitConfig(opts.ConfigFile)
			if err != nil {
				return handler.Handle(err)
			}
			if path == "" {
				cwd, _ := os.Getwd()
				return handler.Handle(findError(cwd))
			}

			cfg, err := registry.Load(path)
			if err != nil {
				return handler.Handle(err)
			}

			output, _ := cmd.Flags().GetString("output")
			switch output {
			case "table", "":
				return printHookTable(cfg)
			case "yaml", "json", "toml":
				return cfg.EncodeTo(os.Stdout, registry.Format(output))
			default:
				return fmt.Errorf("unknown output format: %s (want table, yaml, json, or toml)", output)
			}
		},
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table, yaml, json, or toml")

	return cmd
}

func printHookTable(cfg *registry.Config) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REPO\tREV\tHOOK\tNAME")
	for _, pair := range cfg.Pairs() {
		rev := pair.Repo.Rev
		if pair.Repo.IsLocal() {
			rev = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pair.Repo.Repo, rev, pair.Hook.ID, pair.Hook.DisplayName())
	}
	return w.Flush()
}
