package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	var showPasswords bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all members in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(newMemberList(rootOpts.Store.All(), showPasswords))
		},
	}
	cmd.Flags().BoolVar(&showPasswords, "show-passwords", false, "print passwords instead of masking them")
	return cmd
}
