package cli

import (
	"github.com/spf13/cobra"

	"github.com/maruel/memberstore/internal/seed"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	var as string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the hydrated store to stdout in a seed format",
		Long: `Write every member, passwords included, to stdout in one of the seed
formats. The output can be fed back with --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := seed.ParseFormat(as)
			if err != nil {
				return err
			}
			return seed.Encode(cmd.OutOrStdout(), format, rootOpts.Store.Members())
		},
	}
	cmd.Flags().StringVar(&as, "as", string(seed.FormatYAML), "seed format (yaml|json|jsonl)")
	return cmd
}
