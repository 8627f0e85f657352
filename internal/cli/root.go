// Package cli implements the memberstore command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maruel/memberstore/internal/seed"
	"github.com/maruel/memberstore/internal/storage"
)

// envPrefix prefixes environment variables that provide flag defaults.
const envPrefix = "MEMBERSTORE_"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags and shared state for all commands.
type RootOptions struct {
	Seed     string
	Format   string // "json" | "text"
	LogLevel string

	// Store is the single store instance shared by every command.
	Store *storage.MemberStore
	// Level, if set, is adjusted according to LogLevel.
	Level *slog.LevelVar
}

// NewRootCommand creates the root command.
func NewRootCommand(store *storage.MemberStore, level *slog.LevelVar) *cobra.Command {
	opts := &RootOptions{Store: store, Level: level}

	cmd := &cobra.Command{
		Use:   "memberstore",
		Short: "In-memory member store",
		Long: `An in-memory member store keyed by identifier.

The store is hydrated from a seed file (YAML, JSON or JSONL) and every
read and write works on copies. Nothing is written back to disk.

Flags can be defaulted from MEMBERSTORE_SEED, MEMBERSTORE_FORMAT and
MEMBERSTORE_LOG_LEVEL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			lvl, err := parseLevel(opts.LogLevel)
			if err != nil {
				return err
			}
			if opts.Level != nil {
				opts.Level.Set(lvl)
			}
			if opts.Seed == "" {
				return nil
			}
			return seed.Hydrate(cmd.Context(), opts.Store, opts.Seed)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Seed, "seed", "s", "", "seed file used to hydrate the store (.yaml, .json, .jsonl)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// applyEnv sets flags that were not given on the command line from the
// environment.
func applyEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		name := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if v, ok := os.LookupEnv(name); ok {
			if err2 := flags.Set(f.Name, v); err2 != nil {
				err = fmt.Errorf("invalid %s: %w", name, err2)
			}
		}
	})
	return err
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
