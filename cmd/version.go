/* cmd/version.go */

package cmd

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_cli"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_io"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/shared"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the genpass version",
	RunE: genpass_cli.Wrap(func(rc *genpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), shared.Version)
		return nil
	}),
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
