// Package cli implements the pramaanctl commands for checking Aadhaar
// numbers from scripts and terminals without running the HTTP service.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is injected from main at build time.
var Version = "dev"

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pramaanctl",
		Short:         "Verhoeff checksum tools for 12-digit Aadhaar numbers",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}

// Execute runs the root command and exits nonzero on failure.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// A failed checksum already printed its verdict; the exit code says
		// the rest.
		if !errors.As(err, &errExitInvalid{}) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
