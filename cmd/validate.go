package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/registry"
	"github.com/grovetools/hookcfg/schema"
)

// NewValidateCmd creates the `validate` command
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path|glob ...]",
		Short: "Validate hook configuration files",
		Long: `Loads and validates one or more hook configuration files against the
registry invariants: every remote source entry pins a revision, every source
entry declares hooks, local hooks define an entry command and language, and
file filters are valid regular expressions.

With no arguments the configuration is discovered from the current directory
upward (and the git repository root). Arguments may be paths or doublestar
globs such as '**/.pre-commit-config.yaml'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.GetLogger(cmd)
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			strict, _ := cmd.Flags().GetBool("schema")
			knownHooks, _ := cmd.Flags().GetBool("known-hooks")

			paths, err := resolvePaths(args, opts.ConfigFile)
			if err != nil {
				return handler.Handle(err)
			}

			var validator *schema.Validator
			if strict {
				validator, err = schema.NewValidator()
				if err != nil {
					return handler.Handle(err)
				}
			}

			failed := 0
			for _, path := range paths {
				logger.WithField("path", path).Debug("Validating hook configuration")

				warnings, err := validateOne(path, validator, knownHooks)
				if err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "%s:\n", path)
					handler.Handle(err)
					continue
				}
				for _, w := range warnings {
					fmt.Fprintf(os.Stderr, "%s: warning: %s\n", path, w)
				}
				fmt.Printf("%s: ok\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d configuration(s) failed validation", failed, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().Bool("schema", false, "Also validate against the embedded JSON Schema (strict mode)")
	cmd.Flags().Bool("known-hooks", false, "Check hook ids against the built-in known-hook registry")

	return cmd
}

func validateOne(path string, validator *schema.Validator, knownHooks bool) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := registry.LoadFromBytes(data)
	if err != nil {
		return nil, err
	}

	if validator != nil {
		if err := validator.ValidateDocument(data); err != nil {
			return nil, err
		}
	}

	if knownHooks {
		if err := cfg.ValidateKnownHooks(registry.BuiltinKnownHooks); err != nil {
			return nil, err
		}
	}

	return cfg.Warnings(), nil
}

// resolvePaths expands arguments into concrete file paths. Without arguments
// it falls back to the --config flag or directory discovery.
func resolvePaths(args []string, configFlag string) ([]string, error) {
	if len(args) == 0 {
		path, err := cli.InitConfig(configFlag)
		if err != nil {
			return nil, err
		}
		if path == "" {
			cwd, _ := os.Getwd()
			return nil, findError(cwd)
		}
		return []string{path}, nil
	}

	var paths []string
	for _, arg := range args {
		if !hasGlobMeta(arg) {
			paths = append(paths, arg)
			continue
		}

		base, pattern := doublestar.SplitPattern(filepath.ToSlash(arg))
		matches, err := doublestar.Glob(os.DirFS(base), pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		for _, m := range matches {
			paths = append(paths, filepath.Join(base, m))
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no configuration files matched")
	}
	return paths, nil
}

func hasGlobMeta(path string) bool {
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

func findError(dir string) error {
	_, err := registry.FindConfigFile(dir)
	return err
}
