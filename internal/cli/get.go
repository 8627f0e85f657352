package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	var showPassword bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print one member",
		Long: `Print the member with the given id.

A member is reported found only when exactly one record has the id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := rootOpts.Store.Member(id)
			if err != nil {
				return err
			}
			view := lookupView{ID: id, Found: res.Found}
			if res.Found {
				v := newMemberView(res.Member, showPassword)
				view.Member = &v
			}
			return rootOpts.formatter(cmd).Success(view)
		},
	}
	cmd.Flags().BoolVar(&showPassword, "show-password", false, "print the password instead of masking it")
	return cmd
}

// parseID parses a decimal member id.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}
