package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pramaan/pkg/verhoeff"
)

func newGenerateCommand() *cobra.Command {
	var digitOnly bool

	cmd := &cobra.Command{
		Use:   "generate <11-digit-prefix>",
		Short: "Compute the check digit completing an 11-digit prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			full, err := verhoeff.Complete(args[0])
			if err != nil {
				return err
			}
			if digitOnly {
				fmt.Fprintln(cmd.OutOrStdout(), string(full[len(full)-1]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), full)
			return nil
		},
	}

	cmd.Flags().BoolVar(&digitOnly, "digit-only", false, "print only the check digit")
	return cmd
}
