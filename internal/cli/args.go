package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/normhash/pkg/normhash"
)

// RequireInputFile validates that FILE_IN and at most one FILE_OUT are given.
// Returns a helpful error message with usage and examples if not.
// With --version no arguments are needed.
func RequireInputFile(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		return nil
	}
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <FILE_IN>

Usage: %s

Example:
  %s notes.txt`, normhash.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: accepts at most 2 arg(s), received %d", normhash.ErrUsage, len(args))
	}
	return nil
}

// completeFiles lets the shell complete FILE_IN and FILE_OUT.
func completeFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) >= 2 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}
