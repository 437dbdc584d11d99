// pkg/genpass_cli/wrap.go

package genpass_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_err"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_io"
	"github.com/CodeMonkeyCybersecurity/genpass/pkg/logger"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Wrap adapts a RuntimeContext handler to cobra's RunE, adding panic
// recovery, span lifecycle, and stack capture for unexpected errors.
func Wrap(fn func(rc *genpass_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.GetLogger() // installs the fallback when main skipped init

		rc := genpass_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !genpass_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
