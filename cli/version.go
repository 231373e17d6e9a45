package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/hookcfg/version"
)

// SetVersion enables cobra's --version flag on the root command with a
// template matching the `version` subcommand's long output.
func SetVersion(cmd *cobra.Command, info version.Info) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:     %s
  Built:      %s
  Go version: %s
  Platform:   %s
`, info.Commit, info.BuildDate, info.GoVersion, info.Platform))
}
