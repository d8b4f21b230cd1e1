package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pramaan/pkg/verhoeff"
)

// errExitInvalid marks a checksum failure so Execute can report it without a
// usage dump; the nonzero exit is the machine-readable verdict.
type errExitInvalid struct{}

func (errExitInvalid) Error() string { return "checksum failed" }

func newValidateCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <number>",
		Short: "Check a 12-digit number against the Verhoeff checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verhoeff.Validate(args[0]) {
				if !quiet {
					fmt.Fprintln(cmd.OutOrStdout(), "valid")
				}
				return nil
			}
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			}
			return errExitInvalid{}
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, use exit code only")
	return cmd
}
