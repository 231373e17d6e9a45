package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/registry"
)

// NewWatchCmd creates the `watch` command
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the hook configuration and re-validate on every change",
		Long: `Watches the hook configuration file and re-runs validation whenever it is
written, printing the result. Useful while editing a configuration. The file
is never executed; only the schema is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
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

			debounceMs, _ := cmd.Flags().GetInt("debounce-ms")

			// Validate once up front so the first result doesn't wait for a write.
			report(path, handler)

			watcher, err := registry.NewWatcher(path, debounceMs, func(cfg *registry.Config, err error) {
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s:\n", path)
					handler.Handle(err)
					return
				}
				fmt.Printf("%s: ok (%d hooks)\n", path, len(cfg.Pairs()))
			})
			if err != nil {
				return handler.Handle(err)
			}

			logger.WithField("path", path).Info("Watching hook configuration")

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			watcher.Start(ctx)
			return nil
		},
	}

	cmd.Flags().Int("debounce-ms", 100, "Debounce window for rapid file changes in milliseconds")

	return cmd
}

func report(path string, handler *cli.ErrorHandler) {
	cfg, err := registry.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s:\n", path)
		handler.Handle(err)
		return
	}
	fmt.Printf("%s: ok (%d hooks)\n", path, len(cfg.Pairs()))
}
