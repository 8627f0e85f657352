package cli

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/maruel/memberstore/internal/seed"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the store hydrated from the seed file until interrupted",
		Long: `Hydrate the store from --seed, then re-hydrate it every time the file
changes. A file that fails to parse is reported and the previous members
are kept. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootOpts.Seed == "" {
				return errors.New("watch requires --seed")
			}
			ctx := cmd.Context()
			out := rootOpts.formatter(cmd)
			err := seed.Watch(ctx, rootOpts.Store, rootOpts.Seed, seed.Options{
				MinInterval: interval,
				OnReload: func(n int, err error) {
					if err != nil {
						_ = out.Error(err)
						return
					}
					_ = out.Success(newMemberList(rootOpts.Store.All(), false))
				},
			})
			if err != nil {
				return err
			}
			slog.InfoContext(ctx, "Watching seed file", "path", rootOpts.Seed, "members", rootOpts.Store.Len())
			<-ctx.Done()
			slog.InfoContext(ctx, "Stopped watching")
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "min-interval", seed.DefaultMinInterval, "minimum delay between two reloads")
	return cmd
}
