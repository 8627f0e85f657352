package cli

import (
	"github.com/spf13/cobra"

	"github.com/maruel/memberstore/internal/storage"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <id> <password>",
		Short: "Verify a member's password",
		Long: `Verify a member's password. Stored bcrypt hashes are checked with
bcrypt; other stored values are compared as plain text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := storage.Authenticate(rootOpts.Store, id, args[1])
			if err != nil {
				return err
			}
			v := newMemberView(m, false)
			return rootOpts.formatter(cmd).Success(v)
		},
	}
}
